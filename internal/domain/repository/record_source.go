package repository

import (
	"context"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
)

// RecordSource produces the records an operation works on.
// Implementations may read from memory, local files or object storage.
type RecordSource interface {
	Records(ctx context.Context) ([]entity.Record, error)
	Describe() string
}

// RecordSourceResolver builds a RecordSource for a named source kind and location.
type RecordSourceResolver interface {
	Resolve(ctx context.Context, kind, location string) (RecordSource, error)
}
