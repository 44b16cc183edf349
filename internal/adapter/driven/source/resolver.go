package source

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriellafis/data-report-cli/internal/domain/repository"
	"github.com/gabriellafis/data-report-cli/internal/shared/types"
)

// Resolver maps a source kind and location to a RecordSource.
type Resolver struct {
	profile     string
	region      string
	newS3Client func(ctx context.Context) (S3GetObjectAPI, error)
}

// NewResolver cria um Resolver; profile e region são opcionais e afetam apenas o S3.
func NewResolver(profile, region string) *Resolver {
	r := &Resolver{profile: profile, region: region}
	r.newS3Client = r.loadS3Client
	return r
}

// WithS3Client makes the resolver use client instead of building one from the AWS config.
func (r *Resolver) WithS3Client(client S3GetObjectAPI) *Resolver {
	r.newS3Client = func(context.Context) (S3GetObjectAPI, error) {
		return client, nil
	}
	return r
}

func (r *Resolver) Resolve(ctx context.Context, kind, location string) (repository.RecordSource, error) {
	switch kind {
	case types.SourceFile:
		if location == "" {
			return nil, types.ErrMissingRecordPath
		}
		return NewFileSource(location), nil
	case types.SourceS3:
		if location == "" {
			return nil, types.ErrMissingRecordPath
		}
		client, err := r.newS3Client(ctx)
		if err != nil {
			return nil, err
		}
		src, err := NewS3Source(client, location)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownSource, kind)
	}
}

func (r *Resolver) loadS3Client(ctx context.Context) (S3GetObjectAPI, error) {
	var opts []func(*config.LoadOptions) error
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	if r.region != "" {
		opts = append(opts, config.WithRegion(r.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}
