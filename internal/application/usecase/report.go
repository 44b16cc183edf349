package usecase

import (
	"strings"
	"time"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
)

// DefaultReportType is used when the caller does not name a report type.
const DefaultReportType = "summary"

// ReportBuilder assembles reports. Clock is the only source of time; nil means time.Now.
type ReportBuilder struct {
	Author string
	Clock  func() time.Time
}

// NewReportBuilder creates a builder stamping reports with the given author.
func NewReportBuilder(author string) ReportBuilder {
	return ReportBuilder{Author: author, Clock: time.Now}
}

// Build creates a report for the given type label. Any label is accepted;
// it only affects the title.
func (b ReportBuilder) Build(label string, records []entity.Record) entity.Report {
	if label == "" {
		label = DefaultReportType
	}

	now := time.Now
	if b.Clock != nil {
		now = b.Clock
	}

	data := make([]entity.Record, len(records))
	copy(data, records)

	return entity.Report{
		Title:     strings.ToUpper(label) + " Report",
		Author:    b.Author,
		Timestamp: now().UTC().Format(time.RFC3339),
		Data:      data,
		Summary:   summarize(data),
	}
}

func summarize(records []entity.Record) map[string]float64 {
	var sum float64
	for _, r := range records {
		sum += r.Value
	}

	avg := 0.0
	if len(records) > 0 {
		avg = sum / float64(len(records))
	}

	return map[string]float64{
		entity.SummaryTotalItems: float64(len(records)),
		entity.SummaryAvgValue:   avg,
	}
}
