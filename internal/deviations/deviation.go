// Package deviations compares current counts with historical baselines.
package deviations

import (
	"math"

	"log-baseline/internal/models"
)

// DefaultAlpha is the pseudo-count added to both sides in log-ratio mode.
const DefaultAlpha = 1.0

// Deviation returns how far current departs from baseline.
//
// Percent mode yields (current-baseline)/baseline*100 and fails with
// ErrDivisionByZero when baseline is 0. Log-ratio mode yields
// log10((current+alpha)/(baseline+alpha)) and requires alpha > 0.
func Deviation(current, baseline int64, mode models.DeviationMode, alpha float64) (float64, error) {
	switch mode {
	case models.DeviationPercent:
		if baseline == 0 {
			return 0, errDivisionByZero()
		}
		return (float64(current) - float64(baseline)) / float64(baseline) * 100, nil

	case models.DeviationLogRatio:
		if !(alpha > 0) || math.IsInf(alpha, 0) {
			return 0, errInvalidAlpha(alpha)
		}
		return math.Log10((float64(current) + alpha) / (float64(baseline) + alpha)), nil

	default:
		return 0, errUnknownMode(mode)
	}
}

// Compute wraps Deviation into a DeviationResult for metric.
func Compute(metric string, current, baseline int64, mode models.DeviationMode, alpha float64) (*models.DeviationResult, error) {
	d, err := Deviation(current, baseline, mode, alpha)
	if err != nil {
		return nil, err
	}
	return &models.DeviationResult{
		MetricName: metric,
		Current:    current,
		Baseline:   baseline,
		Mode:       mode,
		Deviation:  d,
	}, nil
}

// AsPercent expresses a deviation as a percentage change regardless of mode,
// so both modes can share one colour scale.
func AsPercent(d float64, mode models.DeviationMode) float64 {
	if mode == models.DeviationLogRatio {
		return (math.Pow(10, d) - 1) * 100
	}
	return d
}
