package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ziadkadry99/salaryboard/internal/table"
)

// Static asset contents, exposed for the HTTP server.
var (
	Stylesheet = []byte(cssContent)
	Script     = []byte(jsContent)
)

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title    string
	BasePath string
	Notes    template.HTML
	Columns  []table.Column
	Fragment table.Fragment
	ChartSVG template.HTML
}

// WritePage renders the full dashboard page from the board's current table
// state. basePath prefixes the stylesheet and script URLs.
func (b *Board) WritePage(w io.Writer, basePath string) error {
	return pageTmpl.Execute(w, pageData{
		Title:    b.Title,
		BasePath: basePath,
		Notes:    b.Notes,
		Columns:  table.Columns(),
		Fragment: b.View.Fragment(),
		ChartSVG: b.ChartSVG,
	})
}

// SiteGenerator writes a board as a static snapshot.
type SiteGenerator struct {
	OutputDir string
	Logger    *zap.Logger
}

// NewSiteGenerator creates a SiteGenerator writing into outputDir.
func NewSiteGenerator(outputDir string, logger *zap.Logger) *SiteGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteGenerator{OutputDir: outputDir, Logger: logger}
}

// Generate writes index.html, its assets, the chart and the dataset. Returns
// the number of files written.
func (g *SiteGenerator) Generate(b *Board) (int, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	data, err := json.MarshalIndent(b.Data, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding dataset: %w", err)
	}

	files := []struct {
		name    string
		content []byte
	}{
		{"style.css", Stylesheet},
		{"script.js", Script},
		{"chart.svg", []byte(b.ChartSVG)},
		{"data.json", data},
	}
	for _, f := range files {
		if err := g.write(f.name, f.content); err != nil {
			return 0, err
		}
	}

	indexPath := filepath.Join(g.OutputDir, "index.html")
	out, err := os.Create(indexPath)
	if err != nil {
		return 0, err
	}
	defer out.Close()
	if err := b.WritePage(out, ""); err != nil {
		return 0, fmt.Errorf("rendering index.html: %w", err)
	}
	g.Logger.Debug("wrote file", zap.String("path", indexPath))

	return len(files) + 1, nil
}

func (g *SiteGenerator) write(name string, content []byte) error {
	path := filepath.Join(g.OutputDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	g.Logger.Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(content)))
	return nil
}
