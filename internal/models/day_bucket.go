package models

import "time"

// DateLayout is the calendar date format used for bucket keys and report columns.
const DateLayout = "2006-01-02"

type DayCategory string

const (
	DayBusiness DayCategory = "business"
	DayWeekend  DayCategory = "weekend"
)

// AllDayCategories lists every category in reporting order.
var AllDayCategories = []DayCategory{DayBusiness, DayWeekend}

// CategoryOf classifies Monday to Friday as business days, Saturday and Sunday as weekend.
func CategoryOf(day time.Weekday) DayCategory {
	if day == time.Saturday || day == time.Sunday {
		return DayWeekend
	}
	return DayBusiness
}

// DayBucket is one calendar day of a lookback window.
type DayBucket struct {
	Date     time.Time   `json:"date"`
	Range    TimeRange   `json:"range"`
	Category DayCategory `json:"category"`
}

func (b DayBucket) DateKey() string {
	return b.Date.Format(DateLayout)
}
