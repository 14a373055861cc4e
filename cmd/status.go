package cmd

import (
	"fmt"

	"glaciertk/internal/logging"
	glaciersvc "glaciertk/internal/service/glacier"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"
)

var (
	statusBucket  string
	statusPrefix  string
	statusLogFile string
	statusThreads int
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Glacierオブジェクトのリストア状況を集計するコマンド",
	Long: `プレフィックス配下の全オブジェクトのリストア状況を確認し、サマリーを表示します。

【使い方】
  ` + AppName + ` status --bucket my-bucket --prefix images/
  ` + AppName + ` status --bucket my-bucket --prefix images/ --threads 20

【例】
  ` + AppName + ` status -P my-profile --bucket my-bucket --prefix images/
  → images/ 配下のリストア完了/進行中/未開始/エラーの件数と完了率を表示します。
    オブジェクトごとの結果はログファイルと標準出力の両方に記録されます。`,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		if err := logging.Setup(statusLogFile); err != nil {
			return fmt.Errorf("❌ ログ設定でエラー: %w", err)
		}

		s3Client := s3.NewFromConfig(awsCfg)
		summary, err := glaciersvc.ScanRestoreStatus(s3Client, glaciersvc.ScanOptions{
			Bucket:  statusBucket,
			Prefix:  statusPrefix,
			Threads: statusThreads,
		})
		if err != nil {
			return fmt.Errorf("❌ リストア状況の確認でエラー: %w", err)
		}

		glaciersvc.PrintStatusSummary(summary, statusLogFile)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusBucket, "bucket", "", "S3バケット名")
	statusCmd.Flags().StringVar(&statusPrefix, "prefix", "", "S3プレフィックス（フォルダ）")
	statusCmd.Flags().StringVar(&statusLogFile, "log-file", "glacier_restore_status.log", "ログファイル名")
	statusCmd.Flags().IntVar(&statusThreads, "threads", 10, "状態確認の並列数")
	_ = statusCmd.MarkFlagRequired("bucket")
	_ = statusCmd.MarkFlagRequired("prefix")
}
