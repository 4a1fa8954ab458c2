package table

import (
	"html/template"
	"io"
	"sync"

	"github.com/ziadkadry99/salaryboard/internal/dataset"
)

// Target identifies what a click landed on inside #mainTable.
type Target string

const (
	TargetHeader Target = "header"
	TargetCell   Target = "cell"
)

// Event is one click delivered to the main table's delegated listener.
// Column is set for header clicks, Year for cell clicks.
type Event struct {
	Target Target `json:"target"`
	Column int    `json:"column,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// Fragment is the rendered state of both table bodies.
type Fragment struct {
	MainRows      template.HTML `json:"main_rows"`
	DetailRows    template.HTML `json:"detail_rows"`
	DetailVisible bool          `json:"detail_visible"`
}

// View is the interactive state of the two tables over one Dataset: the
// current row order and the selected year. The Dataset itself is never
// reordered. A View is safe for concurrent use.
type View struct {
	mu sync.Mutex

	data  dataset.Dataset
	order dataset.Dataset

	selectedYear  int
	detailVisible bool
	mainRows      template.HTML
	detailRows    template.HTML
}

// NewView creates a View showing ds in its loaded order with the detail
// table hidden.
func NewView(ds dataset.Dataset) (*View, error) {
	v := &View{
		data:  ds,
		order: ds.Clone(),
	}
	if err := v.renderMainLocked(); err != nil {
		return nil, err
	}
	return v, nil
}

// RenderMainTable re-renders the main table for the current order and
// returns it. The previous content is replaced entirely.
func (v *View) RenderMainTable() (template.HTML, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.renderMainLocked(); err != nil {
		return "", err
	}
	return v.mainRows, nil
}

// RenderDetailTable shows the job-title breakdown for year and reports
// whether the year exists. On a miss the previous detail content and its
// visibility are left as they were.
func (v *View) RenderDetailTable(year int) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renderDetailLocked(year)
}

// SortTable orders the rows ascending by the zero-based column and
// re-renders the main table.
func (v *View) SortTable(column int) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sortLocked(column)
}

// Click dispatches one event the way the delegated listener does: header
// clicks sort, cell clicks open the detail table, anything else is
// ignored. It reports whether the rendered state may have changed and
// returns the state the event produced.
func (v *View) Click(ev Event) (Fragment, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var changed bool
	switch ev.Target {
	case TargetHeader:
		if err := v.sortLocked(ev.Column); err != nil {
			return v.fragmentLocked(), false, err
		}
		changed = true
	case TargetCell:
		found, err := v.renderDetailLocked(ev.Year)
		if err != nil {
			return v.fragmentLocked(), false, err
		}
		changed = found
	}
	return v.fragmentLocked(), changed, nil
}

// Fragment returns the current rendered state of both tables.
func (v *View) Fragment() Fragment {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fragmentLocked()
}

func (v *View) fragmentLocked() Fragment {
	return Fragment{
		MainRows:      v.mainRows,
		DetailRows:    v.detailRows,
		DetailVisible: v.detailVisible,
	}
}

func (v *View) sortLocked(column int) error {
	sorted, err := Sorted(v.order, column)
	if err != nil {
		return err
	}
	v.order = sorted
	return v.renderMainLocked()
}

func (v *View) renderMainLocked() error {
	rows, err := renderString(func(w io.Writer) error {
		return RenderMain(w, v.order)
	})
	if err != nil {
		return err
	}
	v.mainRows = rows
	return nil
}

func (v *View) renderDetailLocked(year int) (bool, error) {
	rec, ok := v.data.Find(year)
	if !ok {
		return false, nil
	}
	rows, err := renderString(func(w io.Writer) error {
		return RenderDetail(w, rec)
	})
	if err != nil {
		return false, err
	}
	v.detailRows = rows
	v.selectedYear = year
	v.detailVisible = true
	return true, nil
}
