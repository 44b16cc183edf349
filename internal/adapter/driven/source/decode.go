package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
	"github.com/gabriellafis/data-report-cli/internal/shared/types"
	"gopkg.in/yaml.v3"
)

// formatFromPath returns the lower-case extension of path without the dot.
func formatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// DecodeRecords parses CSV, JSON or YAML encoded records.
func DecodeRecords(data []byte, format string) ([]entity.Record, error) {
	switch format {
	case "csv":
		return decodeCSV(data)
	case "json":
		var records []entity.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("error parsing JSON records: %w", err)
		}
		return records, nil
	case "yaml", "yml":
		var records []entity.Record
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("error parsing YAML records: %w", err)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("%w: record format %q", types.ErrUnsupportedFormat, format)
	}
}

// decodeCSV expects a header row naming the id, value and category columns in any order.
func decodeCSV(data []byte) ([]entity.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return []entity.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	idx := map[string]int{"id": -1, "value": -1, "category": -1}
	for i, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, ok := idx[key]; ok {
			idx[key] = i
		}
	}
	for key, i := range idx {
		if i < 0 {
			return nil, fmt.Errorf("CSV header is missing column %q", key)
		}
	}

	records := []entity.Record{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("error reading CSV line %d: %w", line, err)
		}

		id, err := strconv.ParseUint(strings.TrimSpace(row[idx["id"]]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid id on CSV line %d: %w", line, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[idx["value"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value on CSV line %d: %w", line, err)
		}

		records = append(records, entity.Record{
			ID:       uint32(id),
			Value:    value,
			Category: strings.TrimSpace(row[idx["category"]]),
		})
	}

	return records, nil
}
