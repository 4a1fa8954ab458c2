package table

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/ziadkadry99/salaryboard/internal/dataset"
)

// ErrUnknownColumn is returned when a sort targets a column index that does
// not exist in the main table.
var ErrUnknownColumn = errors.New("unknown column")

// Column positions in the main table, left to right.
const (
	ColumnYear = iota
	ColumnTotalJobs
	ColumnAverageSalary
)

// Column describes one column of the main table.
type Column struct {
	Key   string
	Label string
	// compare orders two records by this column. Every column has a fixed
	// type, so the comparison kind never depends on the cell values.
	compare func(a, b dataset.YearRecord) int
}

var columns = []Column{
	{
		Key:   "year",
		Label: "Year",
		compare: func(a, b dataset.YearRecord) int {
			return cmp.Compare(a.Year, b.Year)
		},
	},
	{
		Key:   "total_jobs",
		Label: "Total Jobs",
		compare: func(a, b dataset.YearRecord) int {
			return cmp.Compare(a.TotalJobs, b.TotalJobs)
		},
	},
	{
		Key:   "average_salary",
		Label: "Average Salary",
		compare: func(a, b dataset.YearRecord) int {
			return cmp.Compare(a.AverageSalary, b.AverageSalary)
		},
	},
}

// Columns returns the main table's columns in display order.
func Columns() []Column {
	return slices.Clone(columns)
}

// Sorted returns a new slice holding rows ordered ascending by the given
// zero-based column. rows itself is left untouched. Equal keys keep their
// relative order, so sorting an already sorted slice changes nothing.
func Sorted(rows dataset.Dataset, column int) (dataset.Dataset, error) {
	if column < 0 || column >= len(columns) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownColumn, column)
	}
	out := rows.Clone()
	slices.SortStableFunc(out, columns[column].compare)
	return out, nil
}
