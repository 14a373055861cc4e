package glacier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Api は本パッケージが利用するS3操作のサブセット
// *s3.Client がそのまま満たす（テストではフェイクに差し替える）
type S3Api interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	RestoreObject(ctx context.Context, params *s3.RestoreObjectInput, optFns ...func(*s3.Options)) (*s3.RestoreObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// GlacierObject はリストアップしたS3オブジェクトの情報を格納する構造体
type GlacierObject struct {
	Key          string
	Size         int64
	StorageClass string
}

// RestoreStatus はオブジェクト1件のリストア状態
type RestoreStatus string

const (
	StatusCompleted   RestoreStatus = "Completed"
	StatusInProgress  RestoreStatus = "In Progress"
	StatusNotStarted  RestoreStatus = "Not Started"
	StatusRequested   RestoreStatus = "Requested"
	StatusNotEligible RestoreStatus = "Not Eligible"
	StatusFailed      RestoreStatus = "Failed"
	StatusError       RestoreStatus = "Error"
)

// StatusSummary はstatusコマンドの集計結果
type StatusSummary struct {
	Total        int
	Completed    int
	InProgress   int
	NotStarted   int
	Errors       int
	TotalSize    int64 // バイト
	RestoredSize int64 // バイト（リストア完了分のみ）
}

// PercentCompleted は完了率（%）を返す（対象0件のときは0）
func (s *StatusSummary) PercentCompleted() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// RestoreSummary はrestoreコマンドの集計結果
type RestoreSummary struct {
	Total        int
	TotalSize    int64
	StatusCounts map[RestoreStatus]int
	TierUsage    map[types.Tier]int // リストア要求に実際に使ったティア別の件数
}

// archivalClasses はリストアが必要なストレージクラス
var archivalClasses = map[string]bool{
	string(types.StorageClassGlacier):     true,
	string(types.StorageClassDeepArchive): true,
	string(types.StorageClassGlacierIr):   true,
}

func isArchivalClass(storageClass string) bool {
	return archivalClasses[storageClass]
}

// ParseTier はティア名をSDKのTier型に変換する
func ParseTier(tier string) (types.Tier, error) {
	switch tier {
	case "Expedited":
		return types.TierExpedited, nil
	case "Standard":
		return types.TierStandard, nil
	case "Bulk":
		return types.TierBulk, nil
	}
	return "", fmt.Errorf("不正なティア名です: %s (Expedited/Standard/Bulkのいずれかを指定してください)", tier)
}
