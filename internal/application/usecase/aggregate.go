package usecase

import (
	"sort"

	"github.com/gabriellafis/data-report-cli/internal/domain/entity"
)

// Aggregate groups records by category and sums their values.
// An empty input yields an empty, non-nil map.
func Aggregate(records []entity.Record) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range records {
		totals[r.Category] += r.Value
	}
	return totals
}

// SortedTotals flattens a category summary into rows ordered by category label.
func SortedTotals(totals map[string]float64) []entity.CategoryTotal {
	rows := make([]entity.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		rows = append(rows, entity.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Category < rows[j].Category
	})
	return rows
}
