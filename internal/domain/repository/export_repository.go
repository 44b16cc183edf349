package repository

import (
	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
)

type ExportRepository interface {
	ExportReportToJSON(report entity.Report, filename, outputDir string) (string, error)
	ExportReportToCSV(report entity.Report, filename, outputDir string) (string, error)
	ExportReportToPDF(report entity.Report, filename, outputDir string) (string, error)
}
