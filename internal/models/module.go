package models

import "time"

// ModuleStatus represents the change state of a scheduled module.
type ModuleStatus int

const (
	StatusUnchanged ModuleStatus = iota
	StatusChanged
	StatusCancelled
)

// String returns the display label for the status.
func (s ModuleStatus) String() string {
	switch s {
	case StatusChanged:
		return "Changed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unchanged"
	}
}

// Module is a single scheduled class or activity occupying a time interval.
// Sequences returned by the schedule service are ordered non-decreasing by
// start time; EndTime is never before StartTime.
type Module struct {
	Subject   string       `json:"subject"`
	Title     string       `json:"title,omitempty"`
	Room      string       `json:"room"`
	Teacher   string       `json:"teacher"`
	StartTime time.Time    `json:"start_time"`
	EndTime   time.Time    `json:"end_time"`
	Status    ModuleStatus `json:"status"`
}

// Duration returns the scheduled length of the module.
func (m Module) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}

// Intersects reports whether the module's half-open interval
// [StartTime, EndTime) overlaps the half-open interval [start, end).
func (m Module) Intersects(start, end time.Time) bool {
	return m.StartTime.Before(end) && start.Before(m.EndTime)
}
