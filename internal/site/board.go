package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/salaryboard/internal/chart"
	"github.com/ziadkadry99/salaryboard/internal/dataset"
	"github.com/ziadkadry99/salaryboard/internal/table"
)

// BoardOptions configures NewBoard.
type BoardOptions struct {
	Title string
	// NotesFile is an optional markdown file rendered above the tables.
	NotesFile string
	Chart     chart.Options
	Logger    *zap.Logger
}

// Board is a loaded dataset with both of its views rendered: the
// interactive tables and the chart drawn once from the load order.
type Board struct {
	Title    string
	Data     dataset.Dataset
	View     *table.View
	Chart    *chart.Chart
	ChartSVG template.HTML
	Notes    template.HTML
}

// NewBoard renders the tables, the chart and the notes side by side. Each
// task only reads ds, and all of them must succeed.
func NewBoard(ctx context.Context, ds dataset.Dataset, opts BoardOptions) (*Board, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &Board{Title: opts.Title, Data: ds}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		view, err := table.NewView(ds)
		if err != nil {
			return fmt.Errorf("rendering tables: %w", err)
		}
		b.View = view
		return nil
	})

	g.Go(func() error {
		c := chart.Build(ds, opts.Chart)
		var buf bytes.Buffer
		if err := c.WriteSVG(&buf); err != nil {
			return fmt.Errorf("rendering chart: %w", err)
		}
		b.Chart = c
		b.ChartSVG = template.HTML(inlineSVG(buf.String()))
		return nil
	})

	if opts.NotesFile != "" {
		g.Go(func() error {
			notes, err := renderNotes(opts.NotesFile)
			if err != nil {
				return fmt.Errorf("rendering notes: %w", err)
			}
			b.Notes = notes
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("board rendered",
		zap.Int("records", len(ds)),
		zap.Int("chart_points", len(b.Chart.Points)),
		zap.Bool("notes", b.Notes != ""))
	return b, nil
}

// renderNotes converts a markdown file to HTML.
func renderNotes(path string) (template.HTML, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// inlineSVG drops anything before the <svg> element, such as the XML
// declaration, so the document can be embedded in HTML.
func inlineSVG(svg string) string {
	if idx := strings.Index(svg, "<svg"); idx > 0 {
		return svg[idx:]
	}
	return svg
}
