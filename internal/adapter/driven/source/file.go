package source

import (
	"context"
	"fmt"
	"os"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
	"github.com/rs/zerolog"
)

// FileSource reads records from a local CSV, JSON or YAML file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Records(ctx context.Context) ([]entity.Record, error) {
	fileInfo, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("error accessing record file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", s.path)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading record file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", s.path).Int("bytes", len(data)).Msg("record file read")
	return DecodeRecords(data, formatFromPath(s.path))
}

func (s *FileSource) Describe() string {
	return "file " + s.path
}
