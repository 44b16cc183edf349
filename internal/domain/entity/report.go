package entity

// Report bundles metadata, the records it was built from and a summary of named metrics.
type Report struct {
	Title     string             `json:"title"`
	Author    string             `json:"author"`
	Timestamp string             `json:"timestamp"`
	Data      []Record           `json:"data"`
	Summary   map[string]float64 `json:"summary"`
}

// Summary metric keys.
const (
	SummaryTotalItems = "total_items"
	SummaryAvgValue   = "avg_value"
)
