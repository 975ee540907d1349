package models

import "sort"

// EnvironmentReport holds every computed value for one environment, keyed by metric name.
type EnvironmentReport struct {
	Environment string                      `json:"environment"`
	Current     map[string]AggregateResult  `json:"current"`
	Business    map[string]WindowSummary    `json:"business"`
	Weekend     map[string]WindowSummary    `json:"weekend"`
	Synthetics  map[string]SyntheticSummary `json:"synthetics,omitempty"`
}

func NewEnvironmentReport(environment string) *EnvironmentReport {
	return &EnvironmentReport{
		Environment: environment,
		Current:     make(map[string]AggregateResult),
		Business:    make(map[string]WindowSummary),
		Weekend:     make(map[string]WindowSummary),
		Synthetics:  make(map[string]SyntheticSummary),
	}
}

func (r *EnvironmentReport) CurrentCount(metric string) (int64, bool) {
	res, ok := r.Current[metric]
	return res.Count, ok
}

func (r *EnvironmentReport) BusinessSummary(metric string) (WindowSummary, bool) {
	s, ok := r.Business[metric]
	return s, ok
}

func (r *EnvironmentReport) WeekendSummary(metric string) (WindowSummary, bool) {
	s, ok := r.Weekend[metric]
	return s, ok
}

// Summary returns the window summary for the given day category.
func (r *EnvironmentReport) Summary(category DayCategory, metric string) (WindowSummary, bool) {
	if category == DayWeekend {
		return r.WeekendSummary(metric)
	}
	return r.BusinessSummary(metric)
}

// Metrics returns every metric name with a current value, sorted.
func (r *EnvironmentReport) Metrics() []string {
	metrics := make([]string, 0, len(r.Current))
	for m := range r.Current {
		metrics = append(metrics, m)
	}
	sort.Strings(metrics)
	return metrics
}

// SyntheticTests returns the configured synthetic test ids, sorted.
func (r *EnvironmentReport) SyntheticTests() []string {
	ids := make([]string, 0, len(r.Synthetics))
	for id := range r.Synthetics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
