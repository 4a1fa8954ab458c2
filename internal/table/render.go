package table

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"github.com/ziadkadry99/salaryboard/internal/dataset"
)

// mainRowsTemplate renders the body of #mainTable. Each row carries its year
// so a click on any cell can be resolved back to the record.
const mainRowsTemplate = `{{range .}}<tr data-year="{{.Year}}"><td>{{.Year}}</td><td>{{.TotalJobs}}</td><td>{{salary .AverageSalary}}</td></tr>
{{end}}`

// detailRowsTemplate renders the body of #detailTable.
const detailRowsTemplate = `{{range .}}<tr><td>{{.Title}}</td><td>{{.Count}}</td></tr>
{{end}}`

var (
	mainRowsTmpl = template.Must(template.New("main").Funcs(template.FuncMap{
		"salary": formatNumber,
	}).Parse(mainRowsTemplate))
	detailRowsTmpl = template.Must(template.New("detail").Parse(detailRowsTemplate))
)

// RenderMain writes one row per record, in the order given.
func RenderMain(w io.Writer, rows dataset.Dataset) error {
	return mainRowsTmpl.Execute(w, rows)
}

// RenderDetail writes one row per job title of the record.
func RenderDetail(w io.Writer, rec dataset.YearRecord) error {
	return detailRowsTmpl.Execute(w, rec.JobTitles)
}

func renderString(fn func(io.Writer) error) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// formatNumber prints a float without trailing zeros, so 100 stays "100"
// and 118500.5 stays "118500.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
