package glacier

import (
	"context"
	"fmt"
	"sync"

	"glaciertk/internal/logging"
	"glaciertk/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ScanOptions はstatusコマンドのオプション
type ScanOptions struct {
	Bucket  string
	Prefix  string
	Threads int
}

// statusResult はオブジェクト1件分のチェック結果
type statusResult struct {
	Status        RestoreStatus
	RestoredBytes int64
}

// ScanRestoreStatus はプレフィックス配下の全オブジェクトのリストア状況を集計します
func ScanRestoreStatus(client S3Api, opts ScanOptions) (*StatusSummary, error) {
	objects, err := listObjects(client, opts.Bucket, opts.Prefix, false)
	if err != nil {
		return nil, err
	}

	summary := &StatusSummary{Total: len(objects)}
	for _, obj := range objects {
		summary.TotalSize += obj.Size
	}

	if len(objects) == 0 {
		return summary, nil
	}

	maxWorkers := common.ClampWorkers(opts.Threads, len(objects))
	executor := common.NewParallelExecutor(maxWorkers)

	// 完了順に依存しないよう、投入順のインデックスで結果を受ける（1オブジェクト=1スロット）
	results := make([]statusResult, len(objects))
	resultsMutex := &sync.Mutex{}

	for i, obj := range objects {
		idx := i
		o := obj
		executor.Execute(func() {
			status, restoredBytes := checkRestoreStatus(client, opts.Bucket, o)
			resultsMutex.Lock()
			results[idx] = statusResult{Status: status, RestoredBytes: restoredBytes}
			resultsMutex.Unlock()
		})
	}
	executor.Wait()

	for _, r := range results {
		switch r.Status {
		case StatusCompleted:
			summary.Completed++
			summary.RestoredSize += r.RestoredBytes
		case StatusInProgress:
			summary.InProgress++
		case StatusNotStarted:
			summary.NotStarted++
		default:
			summary.Errors++
		}
	}

	return summary, nil
}

// checkRestoreStatus はオブジェクト1件のリストア状態をHeadObjectで確認します
// メタデータ取得に失敗した場合はError扱い（サイズは加算しない）
func checkRestoreStatus(client S3Api, bucket string, obj GlacierObject) (RestoreStatus, int64) {
	head, err := client.HeadObject(context.Background(), &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(obj.Key),
	})
	if err != nil {
		logging.Log.Error().Str("key", obj.Key).Err(err).Msg("リストア状態の確認に失敗")
		return StatusError, 0
	}

	status := classifyRestoreField(head.Restore)
	logging.Log.Info().Str("key", obj.Key).Str("status", string(status)).Msg("リストア状態を確認")

	if status == StatusCompleted {
		size := obj.Size
		if head.ContentLength != nil {
			size = *head.ContentLength
		}
		return status, size
	}
	return status, 0
}

// PrintStatusSummary はリストア状況サマリーを表示します
func PrintStatusSummary(summary *StatusSummary, logFile string) {
	fmt.Println("\n===== Glacierリストア状況サマリー =====")
	fmt.Printf("%s %d\n", common.PadLabel("走査オブジェクト数:", 24), summary.Total)
	fmt.Printf("%s %d\n", common.PadLabel("リストア完了:", 24), summary.Completed)
	fmt.Printf("%s %d\n", common.PadLabel("リストア進行中:", 24), summary.InProgress)
	fmt.Printf("%s %d\n", common.PadLabel("リストア未開始:", 24), summary.NotStarted)
	fmt.Printf("%s %d\n", common.PadLabel("エラー:", 24), summary.Errors)
	fmt.Printf("%s %.2f%%\n", common.PadLabel("完了率:", 24), summary.PercentCompleted())
	fmt.Printf("%s %s\n", common.PadLabel("総データサイズ:", 24), common.FormatGiB(summary.TotalSize))
	fmt.Printf("%s %s\n", common.PadLabel("リストア済みサイズ:", 24), common.FormatGiB(summary.RestoredSize))
	fmt.Printf("\n詳細ログ: %s\n", logFile)
}
