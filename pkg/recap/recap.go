package recap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/hartlabs/hourtrack/pkg/schedule"
	"github.com/hartlabs/hourtrack/pkg/stats"
	log "github.com/sirupsen/logrus"
)

// Renderer turns a reconciliation report into the HTML recap fragment and
// the standalone export document with the embedded weekly chart.
type Renderer interface {
	RenderRecap(report stats.Report) (string, error)
	RenderExport(report stats.Report) ([]byte, error)
}

type HtmlRendererImpl struct {
	recapTmpl  *template.Template
	exportTmpl *template.Template
}

func NewHtmlRenderer() *HtmlRendererImpl {
	funcs := template.FuncMap{
		"hours0": func(v float64) string { return fmt.Sprintf("%.0f", v) },
		"hours1": func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"hours2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}
	return &HtmlRendererImpl{
		recapTmpl:  template.Must(template.New("recap").Funcs(funcs).Parse(recapTemplate)),
		exportTmpl: template.Must(template.New("export").Funcs(funcs).Parse(exportTemplate)),
	}
}

type recapView struct {
	Summary    stats.Summary
	TodayLabel string
	Skipped    []string
	Projects   []stats.ProjectRow
	Totals     stats.ProjectRow
}

type exportView struct {
	Recap     template.HTML
	ChartData template.JS
}

// ChartPoint is the shape consumed by the chart script in the export and by
// the frontend chart endpoint.
type ChartPoint struct {
	Week       string  `json:"week"`
	Estimated  float64 `json:"estimated"`
	Actual     float64 `json:"actual"`
	Difference float64 `json:"difference"`
}

func (r *HtmlRendererImpl) RenderRecap(report stats.Report) (string, error) {
	view := recapView{
		Summary:    report.Summary,
		TodayLabel: schedule.Label(report.Summary.Today),
		Skipped:    report.Skipped,
		Projects:   report.Projects,
		Totals:     projectTotals(report.Projects),
	}
	var b bytes.Buffer
	if err := r.recapTmpl.Execute(&b, view); err != nil {
		log.Errorf("Error rendering recap: %v", err)
		return "", err
	}
	return b.String(), nil
}

func (r *HtmlRendererImpl) RenderExport(report stats.Report) ([]byte, error) {
	recapHtml, err := r.RenderRecap(report)
	if err != nil {
		return nil, err
	}

	chartData, err := json.Marshal(ChartPoints(report))
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart data: %w", err)
	}

	view := exportView{
		Recap:     template.HTML(recapHtml),
		ChartData: template.JS(chartData),
	}
	var b bytes.Buffer
	if err := r.exportTmpl.Execute(&b, view); err != nil {
		log.Errorf("Error rendering export: %v", err)
		return nil, err
	}
	return b.Bytes(), nil
}

// ChartPoints flattens the weekly totals into the chart payload.
func ChartPoints(report stats.Report) []ChartPoint {
	points := make([]ChartPoint, 0, len(report.Weeks))
	for _, week := range report.Weeks {
		points = append(points, ChartPoint{
			Week:       schedule.Label(week.Week),
			Estimated:  week.Estimated,
			Actual:     week.Actual,
			Difference: week.Difference,
		})
	}
	return points
}

func projectTotals(rows []stats.ProjectRow) stats.ProjectRow {
	totals := stats.ProjectRow{Name: "Total"}
	for _, row := range rows {
		totals.Budget += row.Budget
		totals.Actual += row.Actual
		totals.Remaining += row.Remaining
	}
	return totals
}
