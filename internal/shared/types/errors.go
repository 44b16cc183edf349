package types

import "errors"

var (
	ErrUnknownSource     = errors.New("unknown record source")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidS3URI      = errors.New("invalid S3 URI, expected s3://bucket/key")
	ErrMissingRecordPath = errors.New("a record path is required for this source (use --file)")
)
