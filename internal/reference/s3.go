package reference

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectGetter is the subset of the S3 client used to read documents.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads reference documents stored as <prefix>/<document>.json.
type S3Source struct {
	client ObjectGetter
	bucket string
	prefix string
}

// NewS3Source returns a Source backed by the given bucket.
func NewS3Source(client ObjectGetter, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key holding doc.
func (s *S3Source) Key(doc Document) string {
	return path.Join(s.prefix, string(doc)+".json")
}

// Fetch implements Source.
func (s *S3Source) Fetch(ctx context.Context, doc Document) ([]byte, error) {
	if s.client == nil || s.bucket == "" {
		return nil, fmt.Errorf("s3 source %s: %w", doc, ErrDocumentUnconfigured)
	}

	key := s.Key(doc)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var missing *s3types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, fmt.Errorf("s3 source %s: %w", key, ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("s3 source %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("s3 source %s: read body: %w", key, err)
	}
	return data, nil
}
