package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
	"github.com/gabriellafis/data-report-cli/internal/domain/repository"
	"github.com/gabriellafis/data-report-cli/internal/shared/types"
)

type fakeConsole struct {
	out bytes.Buffer
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, "INFO: "+format+"\n", a...)
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, "WARNING: "+format+"\n", a...)
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, "ERROR: "+format+"\n", a...)
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, "SUCCESS: "+format+"\n", a...)
}
func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }

type fakeTable struct {
	rows []string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{}) {
	t.rows = append(t.rows, strings.TrimSpace(fmt.Sprintln(cells...)))
}
func (t *fakeTable) Render() string { return strings.Join(t.rows, "\n") }

type staticSource []entity.Record

func (s staticSource) Records(ctx context.Context) ([]entity.Record, error) { return s, nil }
func (s staticSource) Describe() string                                    { return "static" }

type fakeResolver struct {
	kind, location string
	src            repository.RecordSource
	err            error
}

func (r *fakeResolver) Resolve(ctx context.Context, kind, location string) (repository.RecordSource, error) {
	r.kind, r.location = kind, location
	return r.src, r.err
}

type fakeExporter struct {
	calls []string
	err   error
}

func (e *fakeExporter) record(format, name, dir string) (string, error) {
	e.calls = append(e.calls, format+":"+name+":"+dir)
	return dir + "/" + name + "." + format, e.err
}
func (e *fakeExporter) ExportReportToJSON(r entity.Report, name, dir string) (string, error) {
	return e.record("json", name, dir)
}
func (e *fakeExporter) ExportReportToCSV(r entity.Report, name, dir string) (string, error) {
	return e.record("csv", name, dir)
}
func (e *fakeExporter) ExportReportToPDF(r entity.Report, name, dir string) (string, error) {
	return e.record("pdf", name, dir)
}

var (
	analyzeSample = staticSource{
		{ID: 1, Value: 100.5, Category: "A"},
		{ID: 2, Value: 200.3, Category: "B"},
		{ID: 3, Value: 150.7, Category: "A"},
	}
	reportSample = staticSource{
		{ID: 1, Value: 100.0, Category: "Performance"},
		{ID: 2, Value: 95.5, Category: "Quality"},
	}
	fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
)

func newTestUseCase(resolver repository.RecordSourceResolver) (*ToolUseCase, *fakeConsole, *fakeExporter) {
	console := &fakeConsole{}
	exporter := &fakeExporter{}
	cfg := types.DefaultConfig("1.0.0")
	uc := NewToolUseCase(Sources{Analyze: analyzeSample, Report: reportSample, Resolver: resolver}, exporter, console, cfg)
	uc.SetReportBuilder(ReportBuilder{Author: cfg.Author, Clock: func() time.Time { return fixedNow }})
	return uc, console, exporter
}

func TestAggregate_Sample(t *testing.T) {
	totals := Aggregate(analyzeSample)

	require.Len(t, totals, 2)
	assert.InDelta(t, 251.2, totals["A"], 1e-9)
	assert.InDelta(t, 200.3, totals["B"], 1e-9)
}

func TestAggregate_PreservesSum(t *testing.T) {
	inputs := [][]entity.Record{
		nil,
		{{ID: 1, Value: -3, Category: "x"}},
		{{Value: 1.5, Category: "a"}, {Value: 2.25, Category: "b"}, {Value: 4, Category: "a"}, {Value: 0.125, Category: ""}},
	}

	for _, records := range inputs {
		totals := Aggregate(records)

		var want, got float64
		distinct := map[string]bool{}
		for _, r := range records {
			want += r.Value
			distinct[r.Category] = true
		}
		for _, v := range totals {
			got += v
		}

		assert.NotNil(t, totals)
		assert.Len(t, totals, len(distinct))
		assert.InDelta(t, want, got, 1e-9)
	}
}

func TestSortedTotals(t *testing.T) {
	rows := SortedTotals(map[string]float64{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []entity.CategoryTotal{
		{Category: "a", Total: 1},
		{Category: "b", Total: 2},
		{Category: "c", Total: 3},
	}, rows)
	assert.Empty(t, SortedTotals(map[string]float64{}))
}

func TestReportBuilder_Build(t *testing.T) {
	b := ReportBuilder{Author: types.DefaultAuthor, Clock: func() time.Time { return fixedNow }}

	for _, label := range []string{"performance", "summary", "Mixed Case", ""} {
		report := b.Build(label, reportSample)

		want := label
		if want == "" {
			want = DefaultReportType
		}
		assert.Equal(t, strings.ToUpper(want)+" Report", report.Title)
		assert.Equal(t, types.DefaultAuthor, report.Author)
		assert.Equal(t, "2026-10-18T09:30:00Z", report.Timestamp)
		assert.Len(t, report.Data, 2)
		assert.Equal(t, map[string]float64{"total_items": 2.0, "avg_value": 97.75}, report.Summary)
	}
}

func TestReportBuilder_EmptyData(t *testing.T) {
	report := NewReportBuilder("someone").Build("x", nil)

	assert.Empty(t, report.Data)
	assert.Equal(t, map[string]float64{"total_items": 0, "avg_value": 0}, report.Summary)
	_, err := time.Parse(time.RFC3339, report.Timestamp)
	assert.NoError(t, err)
}

func TestSerializeReport_RoundTrip(t *testing.T) {
	report := ReportBuilder{Author: types.DefaultAuthor, Clock: func() time.Time { return fixedNow }}.Build("performance", reportSample)

	out, err := SerializeReport(report)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"title\": \"PERFORMANCE Report\"")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.ElementsMatch(t, []string{"title", "author", "timestamp", "data", "summary"}, keys(decoded))

	var back entity.Report
	require.NoError(t, json.Unmarshal([]byte(out), &back))
	assert.Equal(t, report, back)
}

func TestSerializeReport_Failure(t *testing.T) {
	report := entity.Report{Data: []entity.Record{{ID: 1, Value: math.NaN(), Category: "A"}}}

	_, err := SerializeReport(report)

	var serr *SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, err.Error(), "failed to serialize report")
	assert.NotNil(t, errors.Unwrap(err))
}

func TestAnalyze_SampleIgnoresFile(t *testing.T) {
	uc, console, _ := newTestUseCase(nil)

	totals, err := uc.Analyze(context.Background(), types.AnalyzeArgs{File: "anything.csv"})
	require.NoError(t, err)

	require.Len(t, totals, 2)
	out := console.out.String()
	assert.Contains(t, out, "Analyzing file: anything.csv")
	assert.Contains(t, out, "  A: 251.20\n  B: 200.30\n")
}

func TestAnalyze_ResolvedSource(t *testing.T) {
	resolver := &fakeResolver{src: staticSource{{Value: 2, Category: "z"}}}
	uc, console, _ := newTestUseCase(resolver)

	_, err := uc.Analyze(context.Background(), types.AnalyzeArgs{File: "data.json", Source: types.SourceFile})
	require.NoError(t, err)

	assert.Equal(t, types.SourceFile, resolver.kind)
	assert.Equal(t, "data.json", resolver.location)
	assert.Contains(t, console.out.String(), "  z: 2.00")
}

func TestAnalyze_UnknownSourceWithoutResolver(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	_, err := uc.Analyze(context.Background(), types.AnalyzeArgs{File: "x", Source: types.SourceS3})
	assert.ErrorIs(t, err, types.ErrUnknownSource)
}

func TestReport_Performance(t *testing.T) {
	uc, console, exporter := newTestUseCase(nil)

	report, err := uc.Report(context.Background(), types.ReportArgs{Type: "performance"})
	require.NoError(t, err)

	assert.Equal(t, "PERFORMANCE Report", report.Title)
	assert.Equal(t, "Gabriel Demetrios Lafis", report.Author)
	assert.Len(t, report.Data, 2)
	assert.Equal(t, 2.0, report.Summary["total_items"])
	assert.Equal(t, 97.75, report.Summary["avg_value"])

	out := console.out.String()
	assert.Contains(t, out, "Generating performance report...")
	assert.Contains(t, out, "SUCCESS: Report generated successfully!")
	assert.Contains(t, out, `"author": "Gabriel Demetrios Lafis"`)
	assert.Empty(t, exporter.calls)
}

func TestReport_DefaultType(t *testing.T) {
	uc, _, _ := newTestUseCase(nil)

	report, err := uc.Report(context.Background(), types.ReportArgs{})
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY Report", report.Title)
}

func TestReport_SerializationFailure(t *testing.T) {
	resolver := &fakeResolver{src: staticSource{{ID: 1, Value: math.Inf(1), Category: "A"}}}
	uc, console, _ := newTestUseCase(resolver)

	_, err := uc.Report(context.Background(), types.ReportArgs{Type: "bad", Source: types.SourceFile, File: "x.csv"})

	var serr *SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Contains(t, console.out.String(), "ERROR: Error generating report:")
	assert.NotContains(t, console.out.String(), "Report generated successfully")
}

func TestReport_Export(t *testing.T) {
	uc, console, exporter := newTestUseCase(nil)

	_, err := uc.Report(context.Background(), types.ReportArgs{
		Type:   "quality",
		Export: []string{"json", "CSV", "xml", "pdf"},
		Dir:    "/tmp/out",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"json:report_quality:/tmp/out",
		"csv:report_quality:/tmp/out",
		"pdf:report_quality:/tmp/out",
	}, exporter.calls)
	assert.Contains(t, console.out.String(), "WARNING: Skipping unsupported export format 'xml'")
	assert.Contains(t, console.out.String(), "SUCCESS: Report saved to /tmp/out/report_quality.pdf")
}

func TestReport_ExportFailure(t *testing.T) {
	uc, _, exporter := newTestUseCase(nil)
	exporter.err = errors.New("disk full")

	_, err := uc.Report(context.Background(), types.ReportArgs{Export: []string{"json"}, ReportName: "custom"})
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, []string{"json:custom:"}, exporter.calls)
}

func TestInfo(t *testing.T) {
	uc, console, _ := newTestUseCase(nil)

	uc.Info(context.Background())

	out := console.out.String()
	assert.Contains(t, out, "Data Report CLI v1.0.0")
	assert.Contains(t, out, "Author: Gabriel Demetrios Lafis")
	assert.Contains(t, out, "OS "+runtime.GOOS)
	assert.Contains(t, out, "Architecture "+runtime.GOARCH)
	assert.NotContains(t, out, "total_items")
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
