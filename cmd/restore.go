package cmd

import (
	"fmt"

	"glaciertk/internal/logging"
	glaciersvc "glaciertk/internal/service/glacier"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"
)

var (
	restoreBucket  string
	restorePrefix  string
	restoreLogFile string
	restoreDays    int
	restoreTier    string
	restoreThreads int
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Glacierオブジェクトのリストアを要求するコマンド",
	Long: `プレフィックス配下のアーカイブ系オブジェクト（GLACIER / DEEP_ARCHIVE / GLACIER_IR）に
リストアを要求し、結果のサマリーを表示します。

すでにリストア済み・進行中のオブジェクトには再要求しません。
Expeditedティアが利用できない場合はStandardティアに1回だけフォールバックします。

【使い方】
  ` + AppName + ` restore --bucket my-bucket --prefix images/
  ` + AppName + ` restore --bucket my-bucket --prefix images/ --days 7 --tier Standard

【例】
  ` + AppName + ` restore -P my-profile --bucket my-bucket --prefix images/ --tier Bulk
  → images/ 配下のアーカイブオブジェクトにBulkティアでリストアを要求します。`,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		tier, err := glaciersvc.ParseTier(restoreTier)
		if err != nil {
			return fmt.Errorf("❌ %w", err)
		}
		if err := logging.Setup(restoreLogFile); err != nil {
			return fmt.Errorf("❌ ログ設定でエラー: %w", err)
		}

		s3Client := s3.NewFromConfig(awsCfg)
		summary, err := glaciersvc.RestoreObjects(s3Client, glaciersvc.RestoreOptions{
			Bucket:  restoreBucket,
			Prefix:  restorePrefix,
			Days:    int32(restoreDays),
			Tier:    tier,
			Threads: restoreThreads,
		})
		if err != nil {
			return fmt.Errorf("❌ リストア要求でエラー: %w", err)
		}

		glaciersvc.PrintRestoreSummary(summary, restoreLogFile)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().StringVar(&restoreBucket, "bucket", "", "S3バケット名")
	restoreCmd.Flags().StringVar(&restorePrefix, "prefix", "", "S3プレフィックス（フォルダ）")
	restoreCmd.Flags().StringVar(&restoreLogFile, "log-file", "glacier_restore.log", "ログファイル名")
	restoreCmd.Flags().IntVar(&restoreDays, "days", 2, "リストア後の保持日数")
	restoreCmd.Flags().StringVar(&restoreTier, "tier", "Expedited", "リストアティア (Expedited/Standard/Bulk)")
	restoreCmd.Flags().IntVar(&restoreThreads, "threads", 10, "リストア要求の並列数")
	_ = restoreCmd.MarkFlagRequired("bucket")
	_ = restoreCmd.MarkFlagRequired("prefix")
}
