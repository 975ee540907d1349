package reports

import (
	"embed"
	"fmt"
	"io"
	"text/template"
	"time"

	"log-baseline/internal/models"
)

//go:embed templates/daily_report.md.tmpl
var templateFS embed.FS

var dailyReportTemplate = template.Must(template.ParseFS(templateFS, "templates/daily_report.md.tmpl"))

// DailyReport is everything the markdown report shows for one run.
type DailyReport struct {
	Date       time.Time
	Snapshot   *models.Snapshot
	Deviations []models.EnvironmentDeviations
}

// ReportFileName returns the file name of the daily report for date.
func ReportFileName(date time.Time) string {
	return fmt.Sprintf("report-%s.md", date.Format(models.DateLayout))
}

//go:generate mockgen -source=markdown_renderer.go -destination=./mocks/markdown_renderer_mock.go -package=mocks
type MarkdownRenderer interface {
	Render(w io.Writer, report *DailyReport) error
}

type markdownRenderer struct {
	tmpl *template.Template
}

func NewMarkdownRenderer() MarkdownRenderer {
	return &markdownRenderer{tmpl: dailyReportTemplate}
}

type markdownView struct {
	Date         string
	RunID        string
	WeeksBack    int
	Environments []markdownEnvironment
	Skipped      []models.SkippedEnvironment
}

type markdownEnvironment struct {
	Name       string
	Baseline   string
	Rows       []markdownRow
	Synthetics []models.SyntheticSummary
}

type markdownRow struct {
	Metric    string
	Current   int64
	Business  string
	Weekend   string
	Deviation string
}

func (r *markdownRenderer) Render(w io.Writer, report *DailyReport) error {
	if err := r.tmpl.Execute(w, buildMarkdownView(report)); err != nil {
		return fmt.Errorf("failed to render markdown report: %w", err)
	}
	return nil
}

func buildMarkdownView(report *DailyReport) markdownView {
	snapshot := report.Snapshot
	view := markdownView{
		Date:      report.Date.Format(models.DateLayout),
		RunID:     snapshot.RunID,
		WeeksBack: snapshot.WeeksBack,
		Skipped:   snapshot.Skipped,
	}

	for _, env := range snapshot.Environments {
		devs := deviationsFor(report.Deviations, env.Environment)
		section := markdownEnvironment{Name: env.Environment, Baseline: notAvailable}
		if devs != nil {
			section.Baseline = string(devs.Baseline)
		}

		for _, metric := range env.Metrics() {
			current, _ := env.CurrentCount(metric)
			business, hasBusiness := env.BusinessSummary(metric)
			weekend, hasWeekend := env.WeekendSummary(metric)

			row := markdownRow{
				Metric:    metric,
				Current:   current,
				Business:  formatAverage(business, hasBusiness),
				Weekend:   formatAverage(weekend, hasWeekend),
				Deviation: notAvailable,
			}
			if devs != nil {
				if res, ok := devs.Result(metric); ok {
					row.Deviation = formatDeviation(res)
				}
			}
			section.Rows = append(section.Rows, row)
		}

		for _, id := range env.SyntheticTests() {
			section.Synthetics = append(section.Synthetics, env.Synthetics[id])
		}
		view.Environments = append(view.Environments, section)
	}
	return view
}
