package models

// PodLogDump is the raw listing captured for one pod over a time range.
type PodLogDump struct {
	RunID       string     `json:"runId"`
	Environment string     `json:"environment"`
	Pod         string     `json:"pod"`
	Range       TimeRange  `json:"range"`
	Entries     []LogEntry `json:"entries"`
}
