package reports

import (
	"fmt"
	"io"
	"math"

	"log-baseline/internal/deviations"
	"log-baseline/internal/models"

	"github.com/charmbracelet/lipgloss"
)

// Red-yellow-green scale centred at 0%: growth is red, decline is green.
var heatScale = []struct {
	upTo  float64
	color lipgloss.Color
}{
	{upTo: -50, color: lipgloss.Color("#1A9850")},
	{upTo: -10, color: lipgloss.Color("#91CF60")},
	{upTo: 10, color: lipgloss.Color("#FEE08B")},
	{upTo: 50, color: lipgloss.Color("#FC8D59")},
	{upTo: math.Inf(1), color: lipgloss.Color("#D73027")},
}

const colorUndefined = lipgloss.Color("#7F7F7F")

// HeatColor maps a percentage change to its heatmap colour.
func HeatColor(pct float64) lipgloss.Color {
	if math.IsNaN(pct) {
		return colorUndefined
	}
	for _, step := range heatScale {
		if pct <= step.upTo {
			return step.color
		}
	}
	return heatScale[len(heatScale)-1].color
}

//go:generate mockgen -source=heatmap_renderer.go -destination=./mocks/heatmap_renderer_mock.go -package=mocks
type HeatmapRenderer interface {
	// Render draws environments as rows and metrics as columns. An empty metrics list shows every metric.
	Render(w io.Writer, snapshot *models.Snapshot, devs []models.EnvironmentDeviations, metrics []string) error
}

type heatmapRenderer struct {
	cellWidth int
}

func NewHeatmapRenderer() HeatmapRenderer {
	return &heatmapRenderer{cellWidth: 16}
}

func (h *heatmapRenderer) Render(w io.Writer, snapshot *models.Snapshot, devs []models.EnvironmentDeviations, metrics []string) error {
	if len(metrics) == 0 {
		metrics = snapshot.Metrics()
	}

	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).MarginBottom(1)
	label := r.NewStyle().Width(h.cellWidth).Bold(true)
	header := r.NewStyle().Width(h.cellWidth).Align(lipgloss.Center).Bold(true)
	cell := r.NewStyle().Width(h.cellWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("#000000"))

	headerCells := []string{label.Render("")}
	for _, metric := range metrics {
		headerCells = append(headerCells, header.Render(metric))
	}
	rows := []string{
		title.Render("Counts vs historical baseline"),
		lipgloss.JoinHorizontal(lipgloss.Top, headerCells...),
	}

	for _, env := range snapshot.Environments {
		envDevs := deviationsFor(devs, env.Environment)
		cells := []string{label.Render(env.Environment)}
		for _, metric := range metrics {
			text, pct := h.cellValue(env, envDevs, metric)
			cells = append(cells, cell.Background(HeatColor(pct)).Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	if _, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...)); err != nil {
		return fmt.Errorf("failed to write heatmap: %w", err)
	}
	return nil
}

// cellValue returns the cell text and the percentage used for its colour; NaN marks an undefined deviation.
func (h *heatmapRenderer) cellValue(env *models.EnvironmentReport, devs *models.EnvironmentDeviations, metric string) (string, float64) {
	current, ok := env.CurrentCount(metric)
	if !ok {
		return "-", math.NaN()
	}
	if devs == nil {
		return fmt.Sprintf("%d", current), math.NaN()
	}
	res, ok := devs.Result(metric)
	if !ok {
		return fmt.Sprintf("%d (%s)", current, notAvailable), math.NaN()
	}
	pct := deviations.AsPercent(res.Deviation, res.Mode)
	return fmt.Sprintf("%d (%+.0f%%)", current, roundPercent(pct)), pct
}
