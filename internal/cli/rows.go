package cli

import (
	"fmt"
	"time"

	"github.com/noah-isme/lectio-cli/internal/models"
	"github.com/noah-isme/lectio-cli/internal/render"
	"github.com/noah-isme/lectio-cli/internal/schedule"
)

const (
	dateLayout    = "2006-01-02"
	instantLayout = "2006-01-02 15:04"
)

var (
	scheduleHeaders = []string{"Subject", "Room", "Teacher", "Start", "End", "Status"}
	userHeaders     = []string{"Name", "Class", "Initials", "Role", "ID"}
	roomHeaders     = []string{"Room", "Description", "ID"}
)

func (a *App) moduleRow(m models.Module) render.Row {
	subject := m.Subject
	if subject == "" {
		subject = m.Title
	}
	return render.Cells(
		subject,
		m.Room,
		a.labels.Label(m.Teacher),
		m.StartTime.Format(instantLayout),
		m.EndTime.Format(instantLayout),
		m.Status.String(),
	)
}

func (a *App) printSchedule(mods []models.Module) {
	rows := make([]render.Row, 0, len(mods))
	for _, m := range mods {
		rows = append(rows, a.moduleRow(m))
	}
	fmt.Fprint(a.out, render.Table(scheduleHeaders, rows))
}

func (a *App) printGrouped(grouped []schedule.Row) {
	rows := make([]render.Row, 0, len(grouped))
	for _, r := range grouped {
		if r.Separator {
			rows = append(rows, render.Label(r.Date.Format("Monday 2006-01-02")))
			continue
		}
		rows = append(rows, a.moduleRow(r.Module))
	}
	fmt.Fprint(a.out, render.Table(scheduleHeaders, rows))
}

func (a *App) printUsers(users []models.User) {
	rows := make([]render.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, render.Cells(u.Name, u.ClassName, u.Initials, u.Role.String(), u.ID))
	}
	fmt.Fprint(a.out, render.Table(userHeaders, rows))
}

// formatDuration renders a total as hours and minutes, e.g. "18h30m".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%dh%02dm", h, m)
}
