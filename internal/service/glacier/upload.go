package glacier

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"

	"glaciertk/internal/logging"
	"glaciertk/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/schollz/progressbar/v3"
)

// UploadOptions はuploadコマンドのオプション
type UploadOptions struct {
	Bucket        string
	Prefix        string
	LocalDir      string
	NumFiles      int
	FileSizeBytes int
	Threads       int
}

const dummyFileChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// UploadDummyFiles はダミーファイルを生成してGLACIERストレージクラスでアップロードします
// アップロードの成否にかかわらず、最後にローカルファイルを削除する
func UploadDummyFiles(client S3Api, opts UploadOptions) error {
	files, err := generateDummyFiles(opts.LocalDir, opts.NumFiles, opts.FileSizeBytes)
	if err != nil {
		return err
	}
	fmt.Printf("✅ %d個のダミーファイルを %s に生成しました\n", len(files), opts.LocalDir)

	defer func() {
		if err := os.RemoveAll(opts.LocalDir); err != nil {
			logging.Log.Warn().Str("dir", opts.LocalDir).Err(err).Msg("ローカルファイルの削除に失敗")
			return
		}
		fmt.Printf("🧹 ローカルのダミーファイルを削除しました\n")
	}()

	maxWorkers := common.ClampWorkers(opts.Threads, len(files))
	executor := common.NewParallelExecutor(maxWorkers)
	bar := progressbar.Default(int64(len(files)), "アップロード中")

	var uploadMutex sync.Mutex
	successCount, failCount := 0, 0

	fmt.Printf("🚀 %d個のファイル（各 %s）を最大%d並列でアップロードします...\n",
		len(files), common.FormatBytes(int64(opts.FileSizeBytes)), maxWorkers)

	for _, file := range files {
		path := file
		executor.Execute(func() {
			err := uploadFile(client, opts.Bucket, opts.Prefix, path)
			uploadMutex.Lock()
			if err != nil {
				failCount++
			} else {
				successCount++
			}
			uploadMutex.Unlock()
			_ = bar.Add(1)
		})
	}
	executor.Wait()

	fmt.Printf("\n✅ アップロード完了: 成功 %d件, 失敗 %d件\n", successCount, failCount)
	return nil
}

// generateDummyFiles は英数字ランダム内容のダミーファイルを生成してパス一覧を返します
func generateDummyFiles(dir string, numFiles, sizeBytes int) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("ローカルディレクトリの作成に失敗: %w", err)
	}

	files := make([]string, 0, numFiles)
	content := make([]byte, sizeBytes)
	for i := 1; i <= numFiles; i++ {
		for j := range content {
			content[j] = dummyFileChars[rand.Intn(len(dummyFileChars))]
		}
		path := filepath.Join(dir, fmt.Sprintf("dummy_file_%04d.txt", i))
		if err := os.WriteFile(path, content, 0644); err != nil {
			return nil, fmt.Errorf("ダミーファイルの生成に失敗: %w", err)
		}
		files = append(files, path)
	}
	return files, nil
}

// uploadFile はファイル1個をGLACIERストレージクラスでアップロードします
func uploadFile(client S3Api, bucket, prefix, path string) error {
	f, err := os.Open(path)
	if err != nil {
		logging.Log.Error().Str("path", path).Err(err).Msg("ファイルのオープンに失敗")
		return err
	}
	defer func() { _ = f.Close() }()

	key := prefix + filepath.Base(path)
	_, err = client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         f,
		StorageClass: types.StorageClassGlacier,
	})
	if err != nil {
		logging.Log.Error().Str("key", key).Err(err).Msg("アップロードに失敗")
		return err
	}

	logging.Log.Info().Str("key", key).Msg("アップロード完了")
	return nil
}
