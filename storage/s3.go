package storage

import (
	"context"
	"errors"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the slice of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store keeps images in an S3 bucket under an optional key prefix.
// Images are always served back through the API, so the bucket can stay
// private.
type S3Store struct {
	client s3API
	bucket string
	prefix string
}

func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) key(filename string) string {
	return path.Join(s.prefix, path.Base(filename))
}

func (s *S3Store) Store(ctx context.Context, contents io.Reader, originalName string) (string, error) {
	filename := NewFilename(originalName)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(filename)),
		Body:        contents,
		ContentType: aws.String(ContentTypeFor(filename)),
	})
	if err != nil {
		return "", err
	}
	return filename, nil
}

func (s *S3Store) Retrieve(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(filename)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	return out.Body, ContentTypeFor(filename), nil
}

func (s *S3Store) Delete(ctx context.Context, filenameOrPath string) error {
	// S3 DeleteObject is already a no-op for missing keys.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(filenameOrPath)),
	})
	return err
}

func (s *S3Store) PublicURL(filename string) string {
	return "/api/images/" + filename
}
