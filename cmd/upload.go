package cmd

import (
	"fmt"

	"glaciertk/internal/logging"
	glaciersvc "glaciertk/internal/service/glacier"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"
)

// uploadコマンドの設定（フラグではなく定数で固定）
const (
	uploadBucket   = "dump1425bucket"
	uploadPrefix   = "images/"
	uploadNumFiles = 10000
	uploadFileSize = 1024 // 1ファイルあたりのバイト数
	uploadLocalDir = "./dummy_files"
	uploadThreads  = 20
	uploadLogFile  = "glacier_upload.log"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "ダミーファイルを生成してGLACIERクラスでアップロードするコマンド",
	Long: `検証用のダミーファイルをローカルに生成し、GLACIERストレージクラスで
S3にアップロードします。アップロード後、ローカルファイルは削除されます。

バケット名・プレフィックス・ファイル数などはソース冒頭の定数で固定です。

【使い方】
  ` + AppName + ` upload -P my-profile`,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		if err := logging.Setup(uploadLogFile); err != nil {
			return fmt.Errorf("❌ ログ設定でエラー: %w", err)
		}

		s3Client := s3.NewFromConfig(awsCfg)
		err := glaciersvc.UploadDummyFiles(s3Client, glaciersvc.UploadOptions{
			Bucket:        uploadBucket,
			Prefix:        uploadPrefix,
			LocalDir:      uploadLocalDir,
			NumFiles:      uploadNumFiles,
			FileSizeBytes: uploadFileSize,
			Threads:       uploadThreads,
		})
		if err != nil {
			return fmt.Errorf("❌ アップロードでエラー: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(uploadCmd)
}
