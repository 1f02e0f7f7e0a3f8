package domain

import "time"

// Granularity is the size of a reporting period.
type Granularity string

const (
	Week     Granularity = "WEEK"
	Month    Granularity = "MONTH"
	Semester Granularity = "SEMESTER"
	Year     Granularity = "YEAR"
	All      Granularity = "ALL"
)

// DateRange is an inclusive calendar range.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
