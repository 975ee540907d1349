package reports

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"log-baseline/internal/models"
)

const podLogTimeLayout = "2006-01-02T15:04:05.000Z07:00"

//go:generate mockgen -source=pod_log_renderer.go -destination=./mocks/pod_log_renderer_mock.go -package=mocks
type PodLogRenderer interface {
	// Render writes one "timestamp - status - message" line per entry, in the given order.
	Render(w io.Writer, entries []models.LogEntry) error
}

type podLogRenderer struct{}

func NewPodLogRenderer() PodLogRenderer {
	return &podLogRenderer{}
}

func (p *podLogRenderer) Render(w io.Writer, entries []models.LogEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s - %s - %s\n", e.Timestamp.UTC().Format(podLogTimeLayout), orDash(e.Status()), orDash(e.Message()))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write pod log report: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// PodLogFileName names the text report for a pod dump.
func PodLogFileName(pod string, at time.Time) string {
	return fmt.Sprintf("pod-logs-%s-%s.txt", pod, at.UTC().Format("20060102T150405Z"))
}
