package models

import "time"

// Window bounds a schedule query. When Truncate is set the service ignores
// the time of day and expands Start and End to whole calendar days; otherwise
// the exact timestamps bound the query.
type Window struct {
	Start    time.Time
	End      time.Time
	Truncate bool
}

// SubjectShare is one entry of a per-subject distribution: how many modules
// of a scheduling set carry the subject, and which share of the set that is.
type SubjectShare struct {
	Subject string
	Count   int
	Percent float64
}
