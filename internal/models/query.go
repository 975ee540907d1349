package models

import "sort"

// QuerySpec pairs a platform filter expression with the metric label it reports under.
type QuerySpec struct {
	MetricName  string `json:"metricName"`
	QueryString string `json:"queryString"`
}

// AggregateResult is one count over one time range.
type AggregateResult struct {
	MetricName string `json:"metricName"`
	Count      int64  `json:"count"`
}

// QuerySpecsFrom turns a metric -> query mapping into specs ordered by metric name.
func QuerySpecsFrom(queries map[string]string) []QuerySpec {
	specs := make([]QuerySpec, 0, len(queries))
	for metric, query := range queries {
		specs = append(specs, QuerySpec{MetricName: metric, QueryString: query})
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].MetricName < specs[j].MetricName })
	return specs
}
