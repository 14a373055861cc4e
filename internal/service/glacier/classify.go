package glacier

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// classifyRestoreField はHeadObjectのx-amz-restoreヘッダーからリストア状態を判定する
func classifyRestoreField(field *string) RestoreStatus {
	if field == nil {
		return StatusNotStarted
	}
	switch {
	case strings.Contains(*field, `ongoing-request="false"`):
		return StatusCompleted
	case strings.Contains(*field, `ongoing-request="true"`):
		return StatusInProgress
	}
	return StatusNotStarted
}

// restoreErrorKind はRestoreObject失敗の分類
type restoreErrorKind int

const (
	errUnclassified restoreErrorKind = iota
	errTierUnavailable
	errAlreadyInProgress
	errNotRestorable
)

// classifyRestoreError はRestoreObjectのエラーを分類する
// ベンダーのエラーメッセージに対する文字列マッチングはこの関数に閉じ込める。
// "Object restore is not allowed" は "is not allowed" を含むため、
// 判定順はnot-restorable → already-in-progress → tier-unavailableの順に固定
func classifyRestoreError(err error) restoreErrorKind {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "InvalidObjectState":
			return errNotRestorable
		case "RestoreAlreadyInProgress":
			return errAlreadyInProgress
		case "GlacierExpeditedRetrievalNotAvailable":
			return errTierUnavailable
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "Object restore is not allowed"):
		return errNotRestorable
	case strings.Contains(msg, "already in progress"),
		strings.Contains(msg, "RestoreAlreadyInProgress"):
		return errAlreadyInProgress
	case strings.Contains(msg, "rate of expedited retrievals"),
		strings.Contains(msg, "is not allowed"),
		strings.Contains(msg, "cannot be expedited"):
		return errTierUnavailable
	}
	return errUnclassified
}
