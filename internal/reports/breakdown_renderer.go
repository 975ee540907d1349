package reports

import (
	"fmt"
	"io"
	"strings"
	"time"

	"log-baseline/internal/models"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

var (
	businessBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("39"))
	weekendBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(lipgloss.Color("208"))
)

//go:generate mockgen -source=breakdown_renderer.go -destination=./mocks/breakdown_renderer_mock.go -package=mocks
type BreakdownRenderer interface {
	// Render draws one bar per day followed by a date/count table.
	Render(w io.Writer, breakdown *models.DailyBreakdown) error
}

type breakdownRenderer struct {
	height   int
	barWidth int
	barGap   int
}

func NewBreakdownRenderer() BreakdownRenderer {
	return &breakdownRenderer{height: 12, barWidth: 5, barGap: 1}
}

func (b *breakdownRenderer) Render(w io.Writer, breakdown *models.DailyBreakdown) error {
	var out strings.Builder
	fmt.Fprintf(&out, "%s per day (%d days, total %d)\n\n", breakdown.MetricName, breakdown.Len(), breakdown.Total())

	if breakdown.Len() == 0 {
		out.WriteString("no data\n")
	} else {
		if chart := b.chart(breakdown); chart != "" {
			out.WriteString(chart)
			out.WriteString("\n\n")
		}
		for _, day := range breakdown.Days {
			fmt.Fprintf(&out, "%-10s  %-8s  %d\n", day.Date, dayCategory(day.Date), day.Count)
		}
	}

	if _, err := io.WriteString(w, out.String()); err != nil {
		return fmt.Errorf("failed to write breakdown: %w", err)
	}
	return nil
}

// chart returns an empty string when every count is zero, since there is nothing to scale.
func (b *breakdownRenderer) chart(breakdown *models.DailyBreakdown) string {
	var maxCount int64
	for _, day := range breakdown.Days {
		maxCount = max(maxCount, day.Count)
	}
	if maxCount == 0 {
		return ""
	}

	width := breakdown.Len() * (b.barWidth + b.barGap)
	bc := barchart.New(width, b.height,
		barchart.WithBarGap(b.barGap),
		barchart.WithBarWidth(b.barWidth),
	)
	for _, day := range breakdown.Days {
		style := businessBarStyle
		if dayCategory(day.Date) == models.DayWeekend {
			style = weekendBarStyle
		}
		bc.Push(barchart.BarData{
			Label: shortDate(day.Date),
			Values: []barchart.BarValue{
				{Name: day.Date, Value: float64(day.Count), Style: style},
			},
		})
	}
	bc.Draw()
	return bc.View()
}

func dayCategory(date string) models.DayCategory {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return models.DayBusiness
	}
	return models.CategoryOf(d.Weekday())
}

// shortDate drops the year so labels fit under a bar.
func shortDate(date string) string {
	if len(date) == len(models.DateLayout) {
		return date[5:]
	}
	return date
}
