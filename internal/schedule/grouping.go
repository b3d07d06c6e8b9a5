package schedule

import (
	"time"

	"github.com/noah-isme/lectio-cli/internal/models"
)

// Row is one line of a day-grouped schedule: either a date separator or a
// module entry.
type Row struct {
	Separator bool
	Date      time.Time
	Module    models.Module
}

// GroupByDay walks an already-ordered module sequence and inserts one date
// separator ahead of the first entry of each newly-seen calendar date. The
// input is never re-sorted, and a single-module result gets no separator at
// all.
func GroupByDay(mods []models.Module) []Row {
	rows := make([]Row, 0, len(mods))
	seen := make(map[time.Time]struct{})
	for _, m := range mods {
		day := DayOf(m.StartTime)
		if _, ok := seen[day]; !ok && len(mods) > 1 {
			seen[day] = struct{}{}
			rows = append(rows, Row{Separator: true, Date: day})
		}
		rows = append(rows, Row{Module: m})
	}
	return rows
}
