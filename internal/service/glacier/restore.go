package glacier

import (
	"context"
	"fmt"
	"sync"

	"glaciertk/internal/logging"
	"glaciertk/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// RestoreOptions はrestoreコマンドのオプション
type RestoreOptions struct {
	Bucket  string
	Prefix  string
	Days    int32
	Tier    types.Tier
	Threads int
}

// restoreResult はオブジェクト1件分のリストア要求結果
// TierUsed はリストア要求を実際に発行した場合のみ設定される
type restoreResult struct {
	Status   RestoreStatus
	TierUsed types.Tier
}

// RestoreObjects はプレフィックス配下のアーカイブ系オブジェクトにリストアを要求します
// 対象はGLACIER/DEEP_ARCHIVE/GLACIER_IRのみ（STANDARD等は候補に含めない）
func RestoreObjects(client S3Api, opts RestoreOptions) (*RestoreSummary, error) {
	objects, err := listObjects(client, opts.Bucket, opts.Prefix, true)
	if err != nil {
		return nil, err
	}

	summary := &RestoreSummary{
		Total:        len(objects),
		StatusCounts: map[RestoreStatus]int{},
		TierUsage:    map[types.Tier]int{},
	}
	for _, obj := range objects {
		summary.TotalSize += obj.Size
	}

	if len(objects) == 0 {
		return summary, nil
	}

	fmt.Printf("🔍 %s 配下の %d 件のオブジェクトを処理します...\n\n", opts.Prefix, len(objects))

	maxWorkers := common.ClampWorkers(opts.Threads, len(objects))
	executor := common.NewParallelExecutor(maxWorkers)

	// 1オブジェクト=1スロットで結果を受ける（完了順に依存しない）
	results := make([]restoreResult, len(objects))
	resultsMutex := &sync.Mutex{}

	for i, obj := range objects {
		idx := i
		o := obj
		executor.Execute(func() {
			status, tierUsed := checkAndRestoreObject(client, opts.Bucket, o.Key, opts.Days, opts.Tier)
			resultsMutex.Lock()
			results[idx] = restoreResult{Status: status, TierUsed: tierUsed}
			resultsMutex.Unlock()
		})
	}
	executor.Wait()

	for _, r := range results {
		summary.StatusCounts[r.Status]++
		if r.Status == StatusRequested && r.TierUsed != "" {
			summary.TierUsage[r.TierUsed]++
		}
	}

	return summary, nil
}

// checkAndRestoreObject はオブジェクト1件の状態を確認し、必要ならリストアを要求します
// すでにリストア済み/進行中の場合は再要求しない（冪等）
func checkAndRestoreObject(client S3Api, bucket, key string, days int32, tier types.Tier) (RestoreStatus, types.Tier) {
	head, err := client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		// HeadObject失敗でもリストア要求自体は通る可能性があるため続行する
		logging.Log.Warn().Str("key", key).Err(err).Msg("HeadObjectに失敗しましたがリストア要求を試行します")
	} else {
		storageClass := string(head.StorageClass)
		if !isArchivalClass(storageClass) {
			logging.Log.Info().Str("key", key).Str("storageClass", storageClass).Msg("リストア対象外のストレージクラスです")
			return StatusNotEligible, ""
		}
		switch classifyRestoreField(head.Restore) {
		case StatusInProgress:
			logging.Log.Info().Str("key", key).Msg("リストアはすでに進行中です")
			return StatusInProgress, ""
		case StatusCompleted:
			logging.Log.Info().Str("key", key).Msg("リストアはすでに完了しています")
			return StatusCompleted, ""
		}
	}

	// 指定ティアでリストア要求
	err = requestRestore(client, bucket, key, days, tier)
	if err == nil {
		logging.Log.Info().Str("key", key).Str("tier", string(tier)).Msg("リストアを要求しました")
		return StatusRequested, tier
	}

	switch classifyRestoreError(err) {
	case errTierUnavailable:
		// Standardティアで1回だけフォールバック
		if fallbackErr := requestRestore(client, bucket, key, days, types.TierStandard); fallbackErr != nil {
			logging.Log.Error().Str("key", key).Err(fallbackErr).Msg("Standardティアでのリストア要求にも失敗")
			return StatusFailed, types.TierStandard
		}
		logging.Log.Warn().Str("key", key).Msg("指定ティアが利用できないためStandardティアに切り替えました")
		return StatusRequested, types.TierStandard
	case errAlreadyInProgress:
		logging.Log.Info().Str("key", key).Msg("リストアはすでに進行中です（エラー応答から検出）")
		return StatusInProgress, ""
	case errNotRestorable:
		logging.Log.Warn().Str("key", key).Msg("このオブジェクトはリストアできません")
		return StatusNotEligible, ""
	}

	logging.Log.Error().Str("key", key).Err(err).Msg("リストア要求に失敗")
	return StatusFailed, ""
}

// requestRestore はRestoreObjectを1回発行します
func requestRestore(client S3Api, bucket, key string, days int32, tier types.Tier) error {
	_, err := client.RestoreObject(context.Background(), &s3.RestoreObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		RestoreRequest: &types.RestoreRequest{
			Days: aws.Int32(days),
			GlacierJobParameters: &types.GlacierJobParameters{
				Tier: tier,
			},
		},
	})
	return err
}

// PrintRestoreSummary はリストア要求サマリーを表示します
func PrintRestoreSummary(summary *RestoreSummary, logFile string) {
	fmt.Println("\n===== Glacierリストア要求サマリー =====")
	fmt.Printf("%s %d\n", common.PadLabel("走査オブジェクト数:", 24), summary.Total)
	fmt.Printf("%s %s\n", common.PadLabel("総データサイズ:", 24), common.FormatGiB(summary.TotalSize))
	for _, status := range []RestoreStatus{StatusCompleted, StatusInProgress, StatusRequested, StatusNotEligible, StatusFailed} {
		fmt.Printf("%s %d\n", common.PadLabel(string(status)+":", 24), summary.StatusCounts[status])
	}
	if len(summary.TierUsage) > 0 {
		fmt.Println("ティア使用状況（リストア要求分）:")
		for _, tier := range []types.Tier{types.TierExpedited, types.TierStandard, types.TierBulk} {
			if count, ok := summary.TierUsage[tier]; ok {
				fmt.Printf("  %s: %d\n", tier, count)
			}
		}
	}
	fmt.Printf("\n詳細ログ: %s\n", logFile)
}
