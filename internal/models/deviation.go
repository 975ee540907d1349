package models

import "fmt"

type DeviationMode string

const (
	DeviationPercent  DeviationMode = "percent"
	DeviationLogRatio DeviationMode = "log_ratio"
)

func ParseDeviationMode(s string) (DeviationMode, error) {
	switch m := DeviationMode(s); m {
	case DeviationPercent, DeviationLogRatio:
		return m, nil
	default:
		return "", fmt.Errorf("unknown deviation mode %q", s)
	}
}

// DeviationResult compares a current value against a baseline.
// Deviation is a percentage or a base-10 log ratio depending on Mode.
type DeviationResult struct {
	MetricName string        `json:"metricName"`
	Current    int64         `json:"current"`
	Baseline   int64         `json:"baseline"`
	Mode       DeviationMode `json:"mode"`
	Deviation  float64       `json:"deviation"`
}

// EnvironmentDeviations holds one environment's deviations against a single baseline category.
// Metrics whose deviation is undefined for the chosen mode are listed in Undefined instead of Results.
type EnvironmentDeviations struct {
	Environment string            `json:"environment"`
	Baseline    DayCategory       `json:"baseline"`
	Results     []DeviationResult `json:"results"`
	Undefined   []string          `json:"undefined,omitempty"`
}

func (e *EnvironmentDeviations) Result(metric string) (DeviationResult, bool) {
	for _, r := range e.Results {
		if r.MetricName == metric {
			return r, true
		}
	}
	return DeviationResult{}, false
}
