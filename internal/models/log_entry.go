package models

import "time"

// LogEntry is a raw record returned by the log platform. Attributes are passed
// through untouched.
type LogEntry struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Attributes map[string]any `json:"attributes"`
}

// LogPage is one page of a cursor-paginated listing. An empty NextCursor ends the listing.
type LogPage struct {
	Entries    []LogEntry
	NextCursor string
}

func (e LogEntry) Status() string  { return e.stringAttribute("status") }
func (e LogEntry) Message() string { return e.stringAttribute("message") }

func (e LogEntry) stringAttribute(key string) string {
	if v, ok := e.Attributes[key].(string); ok {
		return v
	}
	return ""
}
