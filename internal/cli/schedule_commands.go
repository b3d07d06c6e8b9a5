package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/noah-isme/lectio-cli/internal/models"
	"github.com/noah-isme/lectio-cli/internal/render"
	"github.com/noah-isme/lectio-cli/internal/schedule"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

func (a *App) runNow(ctx context.Context) error {
	now := a.clock()
	fmt.Fprintf(a.out, "Current time: %s\n\n", now.Format(instantLayout))

	mods, err := a.fetchOwn(ctx, schedule.Resolve(schedule.SpanNow, now))
	if err != nil {
		return err
	}
	if len(mods) == 0 {
		return apperrors.Clone(apperrors.ErrNoOngoingModule, `no ongoing modules, use "lectio next" to see the next module`)
	}
	a.printSchedule(mods)
	return nil
}

func (a *App) runDay(ctx context.Context, args []string) error {
	anchor, err := a.anchorDate(args)
	if err != nil {
		return err
	}

	mods, err := a.fetchOwn(ctx, schedule.Resolve(schedule.SpanDay, anchor))
	if err != nil {
		return err
	}
	if len(mods) == 0 {
		return apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("no modules on %s", anchor.Format(dateLayout)))
	}
	a.printSchedule(mods)
	return nil
}

func (a *App) runNext(ctx context.Context) error {
	entity, err := a.meEntity(ctx)
	if err != nil {
		return err
	}

	next, err := schedule.Next(ctx, entitySource{svc: a.svc, entity: entity}, a.clock())
	if err != nil {
		return err
	}
	a.printSchedule([]models.Module{next})
	return nil
}

func (a *App) runWeek(ctx context.Context, args []string) error {
	anchor, err := a.anchorDate(args)
	if err != nil {
		return err
	}

	win := schedule.Resolve(schedule.SpanWeek, anchor)
	mods, err := a.fetchOwn(ctx, win)
	if err != nil {
		return err
	}
	if len(mods) == 0 {
		return apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("no modules in the week of %s", win.Start.Format(dateLayout)))
	}

	a.printGrouped(schedule.GroupByDay(mods))
	fmt.Fprintf(a.out, "\nTotal scheduled time: %s\n", formatDuration(schedule.Total(mods)))
	return nil
}

func (a *App) runOverview(ctx context.Context, args []string) error {
	anchor, err := a.anchorDate(args)
	if err != nil {
		return err
	}

	mods, err := a.fetchOwn(ctx, schedule.Resolve(schedule.SpanDay, anchor))
	if err != nil {
		return err
	}
	if len(mods) == 0 {
		return apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("no modules on %s", anchor.Format(dateLayout)))
	}

	a.printSchedule(mods)
	fmt.Fprintf(a.out, "\nTotal scheduled time: %s\n\n", formatDuration(schedule.Total(mods)))

	shares := schedule.Distribution(mods)
	rows := make([]render.Row, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, render.Cells(s.Subject, fmt.Sprintf("%d", s.Count), fmt.Sprintf("%.1f%%", s.Percent)))
	}
	fmt.Fprint(a.out, render.Table([]string{"Subject", "Modules", "Share"}, rows))
	return nil
}

// anchorDate reads an optional YYYY-MM-DD argument, defaulting to the
// invocation instant. A malformed date is an error, never a guessed fallback.
func (a *App) anchorDate(args []string) (time.Time, error) {
	_, pos := splitArgs(args)
	if len(pos) == 0 {
		return a.clock(), nil
	}
	return schedule.ParseDate(pos[0])
}

func (a *App) fetchOwn(ctx context.Context, win models.Window) ([]models.Module, error) {
	entity, err := a.meEntity(ctx)
	if err != nil {
		return nil, err
	}
	return a.svc.Schedule(ctx, entity, win)
}
