package chart

import (
	"cmp"
	"slices"

	"github.com/ziadkadry99/salaryboard/internal/dataset"
)

// AggregatedPoint is the total job count for one year across every record
// carrying that year.
type AggregatedPoint struct {
	Year      int `json:"year"`
	TotalJobs int `json:"total_jobs"`
}

// Aggregate sums total_jobs per distinct year. Points are returned in
// ascending year order.
func Aggregate(ds dataset.Dataset) []AggregatedPoint {
	sums := make(map[int]int, len(ds))
	for _, r := range ds {
		sums[r.Year] += r.TotalJobs
	}

	points := make([]AggregatedPoint, 0, len(sums))
	for year, total := range sums {
		points = append(points, AggregatedPoint{Year: year, TotalJobs: total})
	}
	slices.SortFunc(points, func(a, b AggregatedPoint) int {
		return cmp.Compare(a.Year, b.Year)
	})
	return points
}
