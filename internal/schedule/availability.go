package schedule

import (
	"time"

	"github.com/noah-isme/lectio-cli/internal/models"
)

// Occupancy describes whether a room is free over a queried interval and, if
// not, which modules occupy it.
type Occupancy struct {
	Available bool
	Conflicts []models.Module
}

// At reports a room's occupancy at a single instant.
func At(mods []models.Module, instant time.Time) Occupancy {
	return Between(mods, instant, instant.Add(time.Second))
}

// Between reports a room's occupancy over the half-open interval [start, end).
// A module ending exactly at start, or starting exactly at end, is not a
// conflict.
func Between(mods []models.Module, start, end time.Time) Occupancy {
	var conflicts []models.Module
	for _, m := range mods {
		if m.Intersects(start, end) {
			conflicts = append(conflicts, m)
		}
	}
	return Occupancy{Available: len(conflicts) == 0, Conflicts: conflicts}
}
