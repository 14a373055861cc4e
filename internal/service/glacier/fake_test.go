package glacier

import (
	"context"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ---- fakes ----

type restoreCall struct {
	key  string
	tier types.Tier
}

// fakeS3 はS3Apiのフェイク実装
type fakeS3 struct {
	mu sync.Mutex

	// ListObjectsV2: ContinuationTokenをページ番号として解釈する
	pages   []*s3.ListObjectsV2Output
	listErr error

	headFn    func(key string) (*s3.HeadObjectOutput, error)
	restoreFn func(key string, tier types.Tier) error
	putFn     func(key string) error

	restoreCalls []restoreCall
	putKeys      []string
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	idx := 0
	if params.ContinuationToken != nil {
		idx, _ = strconv.Atoi(*params.ContinuationToken)
	}
	if idx >= len(f.pages) {
		return &s3.ListObjectsV2Output{}, nil
	}
	return f.pages[idx], nil
}

func (f *fakeS3) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headFn == nil {
		return &s3.HeadObjectOutput{StorageClass: types.StorageClassGlacier}, nil
	}
	return f.headFn(aws.ToString(params.Key))
}

func (f *fakeS3) RestoreObject(ctx context.Context, params *s3.RestoreObjectInput, optFns ...func(*s3.Options)) (*s3.RestoreObjectOutput, error) {
	key := aws.ToString(params.Key)
	tier := params.RestoreRequest.GlacierJobParameters.Tier

	f.mu.Lock()
	f.restoreCalls = append(f.restoreCalls, restoreCall{key: key, tier: tier})
	f.mu.Unlock()

	if f.restoreFn != nil {
		if err := f.restoreFn(key, tier); err != nil {
			return nil, err
		}
	}
	return &s3.RestoreObjectOutput{}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := aws.ToString(params.Key)

	f.mu.Lock()
	f.putKeys = append(f.putKeys, key)
	f.mu.Unlock()

	if f.putFn != nil {
		if err := f.putFn(key); err != nil {
			return nil, err
		}
	}
	return &s3.PutObjectOutput{}, nil
}

// ---- test helpers ----

func listEntry(key string, size int64, storageClass types.ObjectStorageClass) types.Object {
	return types.Object{
		Key:          aws.String(key),
		Size:         aws.Int64(size),
		StorageClass: storageClass,
	}
}

func singlePage(entries ...types.Object) []*s3.ListObjectsV2Output {
	return []*s3.ListObjectsV2Output{{Contents: entries}}
}

func headOutput(storageClass types.StorageClass, restore *string, size int64) *s3.HeadObjectOutput {
	return &s3.HeadObjectOutput{
		StorageClass:  storageClass,
		Restore:       restore,
		ContentLength: aws.Int64(size),
	}
}
