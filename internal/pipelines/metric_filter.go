package pipelines

import (
	"log-baseline/internal/models"

	"github.com/gobwas/glob"
)

// metricFilter keeps metrics matching any of its patterns. No patterns keep everything.
type metricFilter struct {
	globs []glob.Glob
}

func newMetricFilter(patterns []string) (*metricFilter, error) {
	f := &metricFilter{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errInvalidMetricPattern(p, err)
		}
		f.globs = append(f.globs, g)
	}
	return f, nil
}

func (f *metricFilter) Match(metric string) bool {
	if len(f.globs) == 0 {
		return true
	}
	for _, g := range f.globs {
		if g.Match(metric) {
			return true
		}
	}
	return false
}

func (f *metricFilter) Apply(specs []models.QuerySpec) []models.QuerySpec {
	kept := make([]models.QuerySpec, 0, len(specs))
	for _, s := range specs {
		if f.Match(s.MetricName) {
			kept = append(kept, s)
		}
	}
	return kept
}
