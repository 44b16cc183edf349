package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
	"github.com/gabriellafis/data-report-cli/internal/shared/types"
	"github.com/rs/zerolog"
)

// S3GetObjectAPI is the subset of the S3 client used to read record objects.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads records from an object stored in S3.
// The object key extension selects the decoder, as for local files.
type S3Source struct {
	client S3GetObjectAPI
	bucket string
	key    string
}

// ParseS3URI splits s3://bucket/key into its bucket and key.
func ParseS3URI(uri string) (string, string, error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return "", "", fmt.Errorf("%w: %s", types.ErrInvalidS3URI, uri)
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %s", types.ErrInvalidS3URI, uri)
	}
	return bucket, key, nil
}

// NewS3Source creates a source for the object addressed by uri.
func NewS3Source(client S3GetObjectAPI, uri string) (*S3Source, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}
	return &S3Source{client: client, bucket: bucket, key: key}, nil
}

func (s *S3Source) Records(ctx context.Context) ([]entity.Record, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting object %s: %w", s.Describe(), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading object %s: %w", s.Describe(), err)
	}

	zerolog.Ctx(ctx).Debug().Str("bucket", s.bucket).Str("key", s.key).Int("bytes", len(data)).Msg("record object read")
	return DecodeRecords(data, formatFromPath(s.key))
}

func (s *S3Source) Describe() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}
