package site

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/salaryboard/internal/chart"
	"github.com/ziadkadry99/salaryboard/internal/dataset"
	"github.com/ziadkadry99/salaryboard/internal/table"
)

func scenario() dataset.Dataset {
	return dataset.Dataset{
		{Year: 2020, TotalJobs: 10, AverageSalary: 100, JobTitles: dataset.JobTitles{{Title: "A", Count: 5}, {Title: "B", Count: 5}}},
		{Year: 2021, TotalJobs: 20, AverageSalary: 200, JobTitles: dataset.JobTitles{{Title: "C", Count: 20}}},
	}
}

func newTestBoard(t *testing.T, opts BoardOptions) *Board {
	t.Helper()
	if opts.Title == "" {
		opts.Title = "Test Board"
	}
	b, err := NewBoard(context.Background(), scenario(), opts)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b := newTestBoard(t, BoardOptions{Chart: chart.DefaultOptions()})

	if b.View == nil || b.Chart == nil {
		t.Fatal("board should have both a view and a chart")
	}
	if len(b.Chart.Points) != 2 {
		t.Errorf("chart points = %d, want 2", len(b.Chart.Points))
	}
	if !strings.HasPrefix(string(b.ChartSVG), "<svg") {
		t.Errorf("chart svg should be inlined without a prolog, starts with %.20q", b.ChartSVG)
	}
	if b.Notes != "" {
		t.Error("notes should be empty without a notes file")
	}
}

func TestNewBoardNotes(t *testing.T) {
	notes := filepath.Join(t.TempDir(), "notes.md")
	writeTestFile(t, notes, "# About\n\nCounts come from **public** postings.\n")

	b := newTestBoard(t, BoardOptions{NotesFile: notes})
	if !strings.Contains(string(b.Notes), "<strong>public</strong>") {
		t.Errorf("notes markdown not rendered: %s", b.Notes)
	}
}

func TestNewBoardNotesHighlightsCode(t *testing.T) {
	notes := filepath.Join(t.TempDir(), "notes.md")
	writeTestFile(t, notes, "Refresh the data with:\n\n```go\nfunc main() {}\n```\n")

	b := newTestBoard(t, BoardOptions{NotesFile: notes})
	html := string(b.Notes)
	if !strings.Contains(html, "<pre") || !strings.Contains(html, "main") {
		t.Fatalf("code block missing from notes: %s", html)
	}
	if strings.Contains(html, `class="language-go"`) {
		t.Errorf("code block should be highlighted, got plain block: %s", html)
	}
	if !strings.Contains(html, `style="`) {
		t.Errorf("highlighted code should carry inline styles: %s", html)
	}
}

func TestNewBoardMissingNotes(t *testing.T) {
	_, err := NewBoard(context.Background(), scenario(), BoardOptions{NotesFile: filepath.Join(t.TempDir(), "none.md")})
	if err == nil {
		t.Fatal("expected error for missing notes file")
	}
}

func TestWritePage(t *testing.T) {
	b := newTestBoard(t, BoardOptions{})

	var buf bytes.Buffer
	if err := b.WritePage(&buf, ""); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	html := buf.String()

	checks := []string{
		`<title>Test Board</title>`,
		`<table id="mainTable">`,
		`<th data-column="year">Year</th>`,
		`<th data-column="total_jobs">Total Jobs</th>`,
		`<th data-column="average_salary">Average Salary</th>`,
		`<tr data-year="2020"><td>2020</td><td>10</td><td>100</td></tr>`,
		`<tr data-year="2021"><td>2021</td><td>20</td><td>200</td></tr>`,
		`<table id="detailTable" style="display:none">`,
		`<div id="chart"><svg`,
		`<script src="script.js"></script>`,
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q", want)
		}
	}
}

func TestWritePageAfterInteraction(t *testing.T) {
	b := newTestBoard(t, BoardOptions{})
	if _, _, err := b.View.Click(table.Event{Target: table.TargetCell, Year: 2020}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := b.WritePage(&buf, "../"); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	html := buf.String()

	if strings.Contains(html, `display:none`) {
		t.Error("detail table should be visible after selecting a year")
	}
	for _, want := range []string{"<tr><td>A</td><td>5</td></tr>", "<tr><td>B</td><td>5</td></tr>", `href="../style.css"`} {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q", want)
		}
	}
}

func TestFullSiteGeneration(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site")
	b := newTestBoard(t, BoardOptions{})

	n, err := NewSiteGenerator(outDir, nil).Generate(b)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if n != 5 {
		t.Errorf("files = %d, want 5", n)
	}

	for _, name := range []string{"index.html", "style.css", "script.js", "chart.svg", "data.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "data.json"))
	if err != nil {
		t.Fatal(err)
	}
	var back dataset.Dataset
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("data.json is not a dataset: %v", err)
	}
	if len(back) != 2 || back[0].JobTitles[1].Title != "B" {
		t.Errorf("data.json lost records or title order: %+v", back)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(index), "<tr data-year=") != 2 {
		t.Error("index.html should hold one main row per record")
	}
}

func TestScriptBindsDelegatedListener(t *testing.T) {
	js := string(Script)
	for _, want := range []string{
		`getElementById('mainTable')`,
		`addEventListener('click'`,
		`'/ws/table'`,
		`'/api/table/sort/'`,
		`'/api/table/detail/'`,
	} {
		if !strings.Contains(js, want) {
			t.Errorf("script.js should contain %q", want)
		}
	}
	if c := strings.Count(js, "addEventListener("); c != 1 {
		t.Errorf("script.js should install exactly one listener, found %d", c)
	}
}

func TestInlineSVG(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{`<?xml version="1.0"?>` + "\n" + `<svg a="b"></svg>`, `<svg a="b"></svg>`},
		{`<svg></svg>`, `<svg></svg>`},
		{`no svg`, `no svg`},
	}
	for _, tt := range tests {
		if got := inlineSVG(tt.input); got != tt.want {
			t.Errorf("inlineSVG(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
