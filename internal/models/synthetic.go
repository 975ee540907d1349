package models

// SyntheticResult is a single synthetic test execution.
type SyntheticResult struct {
	ResultID  string `json:"resultId"`
	Passed    bool   `json:"passed"`
	CheckTime int64  `json:"checkTime"` // epoch ms
}

// SyntheticSummary counts passes and failures of one test over a window.
type SyntheticSummary struct {
	TestID        string `json:"testId"`
	Total         int64  `json:"total"`
	Passed        int64  `json:"passed"`
	Failed        int64  `json:"failed"`
	LastCheckTime int64  `json:"lastCheckTime"`
}

func NewSyntheticSummary(testID string, results []SyntheticResult) SyntheticSummary {
	s := SyntheticSummary{TestID: testID}
	for _, r := range results {
		s.Total++
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
		if r.CheckTime > s.LastCheckTime {
			s.LastCheckTime = r.CheckTime
		}
	}
	return s
}
