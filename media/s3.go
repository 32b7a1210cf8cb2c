package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store stores media in an S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates an S3 media store. prefix is the key prefix under
// which all objects are written, e.g. "media/".
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Save uploads a file to S3 and returns its public object URL.
func (s *S3Store) Save(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error) {
	if size > MaxFileSize {
		return "", ErrTooLarge
	}

	name, err := newObjectName(filename)
	if err != nil {
		return "", err
	}
	key := s.prefix + folder + "/" + name

	var buf bytes.Buffer
	written, err := io.Copy(&buf, io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", err
	}
	if written > MaxFileSize {
		return "", ErrTooLarge
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

// Delete removes an object by its public URL.
func (s *S3Store) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, fmt.Sprintf("https://%s.s3.amazonaws.com/", s.bucket))
	if !ok {
		return ErrNotFound
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete failed: %w", err)
	}
	return nil
}
