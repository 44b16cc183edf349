package usecase

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
	"github.com/gabriellafis/data-report-cli/internal/domain/repository"
	"github.com/gabriellafis/data-report-cli/internal/shared/types"
	"github.com/gabriellafis/data-report-cli/pkg/version"
)

// ToolName is the display name of the tool.
const ToolName = "Data Report CLI"

// Sources groups the record sources the use case can draw from.
// Analyze and Report are the built-in samples used when --source is "sample".
type Sources struct {
	Analyze  repository.RecordSource
	Report   repository.RecordSource
	Resolver repository.RecordSourceResolver
}

// ToolUseCase implements the analyze, report and info operations.
type ToolUseCase struct {
	sources    Sources
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	builder    ReportBuilder
	config     types.Config
}

// NewToolUseCase creates a new tool use case.
func NewToolUseCase(
	sources Sources,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	config types.Config,
) *ToolUseCase {
	return &ToolUseCase{
		sources:    sources,
		exportRepo: exportRepo,
		console:    console,
		builder:    NewReportBuilder(config.Author),
		config:     config,
	}
}

// SetReportBuilder replaces the report builder, mainly to pin the clock.
func (uc *ToolUseCase) SetReportBuilder(b ReportBuilder) {
	uc.builder = b
}

// Config returns the effective configuration.
func (uc *ToolUseCase) Config() types.Config {
	return uc.config
}

// Analyze aggregates the records of the selected source by category and prints the totals.
func (uc *ToolUseCase) Analyze(ctx context.Context, args types.AnalyzeArgs) ([]entity.CategoryTotal, error) {
	uc.console.Printf("Analyzing file: %s\n", args.File)

	src, err := uc.sourceFor(ctx, args.Source, args.File, uc.sources.Analyze)
	if err != nil {
		return nil, err
	}

	records, err := src.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading records from %s: %w", src.Describe(), err)
	}
	zerolog.Ctx(ctx).Debug().Int("records", len(records)).Str("source", src.Describe()).Msg("records loaded")

	totals := SortedTotals(Aggregate(records))

	uc.console.LogSuccess("Analysis complete!")
	uc.console.Println("Summary:")
	for _, t := range totals {
		uc.console.Printf("  %s: %.2f\n", t.Category, t.Total)
	}

	return totals, nil
}

// Report builds a report for the given type, prints it as JSON and exports it when asked.
// A serialization failure is printed and returned.
func (uc *ToolUseCase) Report(ctx context.Context, args types.ReportArgs) (entity.Report, error) {
	label := args.Type
	if label == "" {
		label = uc.config.DefaultReportType
	}

	uc.console.Printf("Generating %s report...\n", label)

	src, err := uc.sourceFor(ctx, args.Source, args.File, uc.sources.Report)
	if err != nil {
		return entity.Report{}, err
	}

	records, err := src.Records(ctx)
	if err != nil {
		return entity.Report{}, fmt.Errorf("error loading records from %s: %w", src.Describe(), err)
	}

	report := uc.builder.Build(label, records)

	out, err := SerializeReport(report)
	if err != nil {
		uc.console.LogError("Error generating report: %v", err)
		return report, err
	}

	uc.console.LogSuccess("Report generated successfully!")
	uc.console.Println(out)

	if err := uc.export(ctx, report, label, args); err != nil {
		return report, err
	}

	return report, nil
}

// Info prints static identity, version and runtime information.
func (uc *ToolUseCase) Info(ctx context.Context) {
	uc.console.LogInfo("System Information")
	uc.console.Printf("%s v%s\n", ToolName, uc.config.Version)
	uc.console.Printf("Author: %s\n", uc.config.Author)
	uc.console.Printf("Build: %s\n", version.FormatVersion())

	uc.console.Println("\nRuntime Information:")
	table := uc.console.CreateTable()
	table.AddColumn("Property")
	table.AddColumn("Value")
	table.AddRow("OS", runtime.GOOS)
	table.AddRow("Architecture", runtime.GOARCH)
	table.AddRow("Go Version", runtime.Version())
	uc.console.Println(table.Render())
}

func (uc *ToolUseCase) sourceFor(ctx context.Context, kind, location string, sample repository.RecordSource) (repository.RecordSource, error) {
	if kind == "" {
		kind = uc.config.DefaultSource
	}
	if kind == "" || kind == types.SourceSample {
		return sample, nil
	}
	if uc.sources.Resolver == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownSource, kind)
	}
	return uc.sources.Resolver.Resolve(ctx, kind, location)
}

func (uc *ToolUseCase) export(ctx context.Context, report entity.Report, label string, args types.ReportArgs) error {
	formats := args.Export
	if len(formats) == 0 {
		formats = uc.config.ExportFormats
	}
	if len(formats) == 0 {
		return nil
	}

	dir := args.Dir
	if dir == "" {
		dir = uc.config.ExportDir
	}

	name := args.ReportName
	if name == "" {
		name = "report_" + strings.ToLower(label)
	}

	for _, format := range formats {
		var path string
		var err error

		switch strings.ToLower(strings.TrimSpace(format)) {
		case "json":
			path, err = uc.exportRepo.ExportReportToJSON(report, name, dir)
		case "csv":
			path, err = uc.exportRepo.ExportReportToCSV(report, name, dir)
		case "pdf":
			path, err = uc.exportRepo.ExportReportToPDF(report, name, dir)
		default:
			uc.console.LogWarning("Skipping unsupported export format '%s'", format)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export %s report: %v", format, err)
			return err
		}

		zerolog.Ctx(ctx).Debug().Str("format", format).Str("path", path).Msg("report exported")
		uc.console.LogSuccess("Report saved to %s", path)
	}

	return nil
}
