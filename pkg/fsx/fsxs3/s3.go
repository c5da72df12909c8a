package fsxs3

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Makanak1/Job-Board-Platform/pkg/fsx"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FileSystem implements fsx.FileSystem against an S3 bucket.
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileSystem creates a FileSystem rooted at bucket/prefix.
func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (f *S3FileSystem) key(path string) string {
	return fsx.Join(f.prefix, path)
}

// WriteFile uploads data to the bucket.
func (f *S3FileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(path)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("s3 put object %s: %w", path, err)
	}
	return nil
}

// ReadFileStream opens the object for streaming; the caller closes it.
func (f *S3FileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(path)),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get object %s: %w", path, err)
	}
	return out.Body, nil
}

// DeleteFile removes the object from the bucket.
func (f *S3FileSystem) DeleteFile(ctx context.Context, path string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(path)),
	})
	if err != nil {
		return fmt.Errorf("s3 delete object %s: %w", path, err)
	}
	return nil
}

// Join builds a storage path from segments.
func (f *S3FileSystem) Join(parts ...string) string {
	return fsx.Join(parts...)
}
