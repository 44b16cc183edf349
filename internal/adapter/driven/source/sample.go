package source

import (
	"context"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
)

// StaticSource serves a fixed, in-memory set of records.
type StaticSource struct {
	name    string
	records []entity.Record
}

// NewStaticSource creates a source that always returns a copy of records.
func NewStaticSource(name string, records []entity.Record) *StaticSource {
	return &StaticSource{name: name, records: records}
}

// NewAnalyzeSample returns the built-in dataset used by analyze.
func NewAnalyzeSample() *StaticSource {
	return NewStaticSource("analyze sample", []entity.Record{
		{ID: 1, Value: 100.5, Category: "A"},
		{ID: 2, Value: 200.3, Category: "B"},
		{ID: 3, Value: 150.7, Category: "A"},
	})
}

// NewReportSample returns the built-in dataset used by report.
func NewReportSample() *StaticSource {
	return NewStaticSource("report sample", []entity.Record{
		{ID: 1, Value: 100.0, Category: "Performance"},
		{ID: 2, Value: 95.5, Category: "Quality"},
	})
}

func (s *StaticSource) Records(ctx context.Context) ([]entity.Record, error) {
	out := make([]entity.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *StaticSource) Describe() string {
	return s.name
}
