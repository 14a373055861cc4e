package glacier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// listObjects はプレフィックス配下のオブジェクト一覧を取得します
// プレフィックス自身（フォルダマーカー）、サイズ0、ストレージクラス未設定の
// エントリは除外する。archivalOnly が true の場合はアーカイブ系クラスのみ返す
func listObjects(client S3Api, bucket, prefix string, archivalOnly bool) ([]GlacierObject, error) {
	var objects []GlacierObject

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	// ページネーション対応
	for {
		output, err := client.ListObjectsV2(context.Background(), input)
		if err != nil {
			return nil, fmt.Errorf("s3オブジェクト一覧取得エラー: %w", err)
		}

		for _, obj := range output.Contents {
			key := aws.ToString(obj.Key)
			size := aws.ToInt64(obj.Size)
			storageClass := string(obj.StorageClass)

			if key == prefix || size == 0 || storageClass == "" {
				continue
			}
			if archivalOnly && !isArchivalClass(storageClass) {
				continue
			}

			objects = append(objects, GlacierObject{
				Key:          key,
				Size:         size,
				StorageClass: storageClass,
			})
		}

		if output.NextContinuationToken == nil {
			break
		}
		input.ContinuationToken = output.NextContinuationToken
	}

	return objects, nil
}
