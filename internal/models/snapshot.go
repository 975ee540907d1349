package models

import (
	"sort"
	"time"
)

// Snapshot is the persisted result of one report run.
type Snapshot struct {
	RunID        string               `json:"runId"`
	GeneratedAt  time.Time            `json:"generatedAt"`
	WeeksBack    int                  `json:"weeksBack"`
	Environments []*EnvironmentReport `json:"environments"`
	Skipped      []SkippedEnvironment `json:"skipped,omitempty"`
}

// SkippedEnvironment records why an environment produced no report.
type SkippedEnvironment struct {
	Environment string `json:"environment"`
	Reason      string `json:"reason"`
}

func (s *Snapshot) Environment(name string) (*EnvironmentReport, bool) {
	for _, env := range s.Environments {
		if env.Environment == name {
			return env, true
		}
	}
	return nil, false
}

// Metrics returns the union of metric names across environments, sorted.
func (s *Snapshot) Metrics() []string {
	seen := make(map[string]struct{})
	var metrics []string
	for _, env := range s.Environments {
		for _, m := range env.Metrics() {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				metrics = append(metrics, m)
			}
		}
	}
	sort.Strings(metrics)
	return metrics
}
