package usecase

import (
	"encoding/json"
	"fmt"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
)

// SerializationError is returned when a report cannot be encoded.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize report: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// SerializeReport renders a report as pretty-printed JSON with two-space indentation.
func SerializeReport(report entity.Report) (string, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", &SerializationError{Err: err}
	}
	return string(out), nil
}
