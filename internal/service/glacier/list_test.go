package glacier

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestListObjectsSkipRules(t *testing.T) {
	fake := &fakeS3{
		pages: singlePage(
			listEntry("images/", 10, types.ObjectStorageClassGlacier),    // プレフィックス自身
			listEntry("images/empty.txt", 0, types.ObjectStorageClassGlacier), // サイズ0
			listEntry("images/no-class.txt", 100, ""),                    // ストレージクラスなし
			listEntry("images/keep.txt", 100, types.ObjectStorageClassGlacier),
		),
	}

	objects, err := listObjects(fake, "my-bucket", "images/", false)
	if err != nil {
		t.Fatalf("listObjects: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("got %d objects, want 1: %+v", len(objects), objects)
	}
	if objects[0].Key != "images/keep.txt" {
		t.Errorf("got key %q, want images/keep.txt", objects[0].Key)
	}
}

func TestListObjectsArchivalOnly(t *testing.T) {
	fake := &fakeS3{
		pages: singlePage(
			listEntry("images/a.txt", 100, types.ObjectStorageClassGlacier),
			listEntry("images/b.txt", 100, types.ObjectStorageClassStandard),
			listEntry("images/c.txt", 100, types.ObjectStorageClassDeepArchive),
			listEntry("images/d.txt", 100, types.ObjectStorageClassGlacierIr),
			listEntry("images/e.txt", 100, types.ObjectStorageClassStandardIa),
		),
	}

	objects, err := listObjects(fake, "my-bucket", "images/", true)
	if err != nil {
		t.Fatalf("listObjects: %v", err)
	}
	if len(objects) != 3 {
		t.Fatalf("got %d objects, want 3: %+v", len(objects), objects)
	}
	for _, obj := range objects {
		if obj.StorageClass == string(types.StorageClassStandard) {
			t.Errorf("STANDARDオブジェクトが候補に含まれている: %+v", obj)
		}
	}
}

func TestListObjectsPagination(t *testing.T) {
	page1 := &s3.ListObjectsV2Output{
		Contents: []types.Object{
			listEntry("images/0001.txt", 10, types.ObjectStorageClassGlacier),
			listEntry("images/0002.txt", 10, types.ObjectStorageClassGlacier),
		},
		NextContinuationToken: aws.String("1"),
	}
	page2 := &s3.ListObjectsV2Output{
		Contents: []types.Object{
			listEntry("images/0003.txt", 10, types.ObjectStorageClassGlacier),
		},
	}
	fake := &fakeS3{pages: []*s3.ListObjectsV2Output{page1, page2}}

	objects, err := listObjects(fake, "my-bucket", "images/", false)
	if err != nil {
		t.Fatalf("listObjects: %v", err)
	}
	if len(objects) != 3 {
		t.Fatalf("got %d objects, want 3", len(objects))
	}
	for i, obj := range objects {
		want := fmt.Sprintf("images/%04d.txt", i+1)
		if obj.Key != want {
			t.Errorf("objects[%d].Key = %q, want %q", i, obj.Key, want)
		}
	}
}
