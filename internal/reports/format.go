package reports

import (
	"fmt"
	"math"

	"log-baseline/internal/models"
)

const notAvailable = "n/a"

func deviationsFor(all []models.EnvironmentDeviations, env string) *models.EnvironmentDeviations {
	for i := range all {
		if all[i].Environment == env {
			return &all[i]
		}
	}
	return nil
}

// formatDeviation renders percent deviations as "+12%" and log ratios as "+0.301".
func formatDeviation(r models.DeviationResult) string {
	if r.Mode == models.DeviationLogRatio {
		return fmt.Sprintf("%+.3f", r.Deviation)
	}
	return fmt.Sprintf("%+.0f%%", roundPercent(r.Deviation))
}

func formatAverage(s models.WindowSummary, ok bool) string {
	if !ok {
		return notAvailable
	}
	return fmt.Sprintf("%d", s.Average)
}

// roundPercent rounds to a whole percent without producing negative zero.
func roundPercent(v float64) float64 {
	r := math.Round(v)
	if r == 0 {
		return 0
	}
	return r
}
