package s3

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypergo/blobstore"
)

// fakeClient is an in-memory stand-in for the S3 API.
type fakeClient struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeClient() *fakeClient {
	return &fakeClient{objects: make(map[string][]byte)}
}

func (f *fakeClient) PutObject(_ context.Context, in *s3sdk.PutObjectInput, _ ...func(*s3sdk.Options)) (*s3sdk.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = data
	return &s3sdk.PutObjectOutput{}, nil
}

func (f *fakeClient) GetObject(_ context.Context, in *s3sdk.GetObjectInput, _ ...func(*s3sdk.Options)) (*s3sdk.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3sdk.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: aws.Int64(int64(len(data))),
	}, nil
}

func (f *fakeClient) DeleteObject(_ context.Context, in *s3sdk.DeleteObjectInput, _ ...func(*s3sdk.Options)) (*s3sdk.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.objects, aws.ToString(in.Key))
	return &s3sdk.DeleteObjectOutput{}, nil
}

func (f *fakeClient) ListObjectsV2(_ context.Context, in *s3sdk.ListObjectsV2Input, _ ...func(*s3sdk.Options)) (*s3sdk.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prefix := aws.ToString(in.Prefix)
	out := &s3sdk.ListObjectsV2Output{}
	for key := range f.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(key)})
		}
	}
	return out, nil
}

func (f *fakeClient) CreateMultipartUpload(context.Context, *s3sdk.CreateMultipartUploadInput, ...func(*s3sdk.Options)) (*s3sdk.CreateMultipartUploadOutput, error) {
	return nil, &types.NotFound{}
}

func (f *fakeClient) UploadPart(context.Context, *s3sdk.UploadPartInput, ...func(*s3sdk.Options)) (*s3sdk.UploadPartOutput, error) {
	return nil, &types.NotFound{}
}

func (f *fakeClient) CompleteMultipartUpload(context.Context, *s3sdk.CompleteMultipartUploadInput, ...func(*s3sdk.Options)) (*s3sdk.CompleteMultipartUploadOutput, error) {
	return nil, &types.NotFound{}
}

func (f *fakeClient) AbortMultipartUpload(context.Context, *s3sdk.AbortMultipartUploadInput, ...func(*s3sdk.Options)) (*s3sdk.AbortMultipartUploadOutput, error) {
	return nil, &types.NotFound{}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeClient(), "bucket", "embeddings/")

	require.NoError(t, store.Put(ctx, "nouns.bin", []byte{1, 2, 3}))

	got, err := store.Get(ctx, "nouns.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeClient(), "bucket", "embeddings/")

	_, err := store.Get(ctx, "missing.bin")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeClient(), "bucket", "embeddings/")

	require.NoError(t, store.Put(ctx, "a.bin", []byte("x")))
	require.NoError(t, store.Delete(ctx, "a.bin"))

	_, err := store.Get(ctx, "a.bin")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newFakeClient(), "bucket", "embeddings/")

	require.NoError(t, store.Put(ctx, "nouns/a.bin", []byte("a")))
	require.NoError(t, store.Put(ctx, "verbs/b.bin", []byte("b")))

	names, err := store.List(ctx, "nouns/")
	require.NoError(t, err)
	assert.Equal(t, []string{"nouns/a.bin"}, names)
}
