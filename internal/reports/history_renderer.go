package reports

import (
	"fmt"
	"io"
	"strconv"

	"log-baseline/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const historyTimeLayout = "2006-01-02 15:04"

//go:generate mockgen -source=history_renderer.go -destination=./mocks/history_renderer_mock.go -package=mocks
type HistoryRenderer interface {
	// Render writes the records as a table, most recent first as given.
	Render(w io.Writer, records []models.HistoryRecord) error
}

type historyRenderer struct{}

func NewHistoryRenderer() HistoryRenderer {
	return &historyRenderer{}
}

func (h *historyRenderer) Render(w io.Writer, records []models.HistoryRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "no history recorded")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("recorded", "run", "metric", "category", "days", "total", "average")
	for _, r := range records {
		t.Row(
			r.RecordedAt.UTC().Format(historyTimeLayout),
			r.RunID,
			r.MetricName,
			string(r.Category),
			strconv.FormatInt(r.DayCount, 10),
			strconv.FormatInt(r.Total, 10),
			strconv.FormatInt(r.Average, 10),
		)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

