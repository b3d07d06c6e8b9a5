package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/noah-isme/lectio-cli/internal/lectio"
	"github.com/noah-isme/lectio-cli/internal/render"
	"github.com/noah-isme/lectio-cli/internal/schedule"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

func (a *App) runRooms(ctx context.Context, args []string) error {
	_, pos := splitArgs(args)
	var query string
	if len(pos) > 0 {
		query = pos[0]
	}

	rooms, err := a.svc.SearchRooms(ctx, query)
	if err != nil {
		return err
	}

	rows := make([]render.Row, 0, len(rooms))
	for _, r := range rooms {
		label, description, ok := r.SplitName()
		if !ok {
			// Rooms outside the "label (description)" convention have no
			// tabular representation and are skipped.
			continue
		}
		rows = append(rows, render.Cells(label, description, r.ID))
	}
	if len(rows) == 0 {
		return apperrors.Clone(apperrors.ErrNotFound, "no rooms found")
	}
	fmt.Fprint(a.out, render.Table(roomHeaders, rows))
	return nil
}

func (a *App) runGetRoom(ctx context.Context, args []string) error {
	flags, pos := splitArgs(args)
	fs := flag.NewFlagSet("get-room", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	nowFlag := fs.Bool("n", false, "check availability at the given time")
	dayFlag := fs.Bool("d", false, "list the room's modules for the day")
	weekFlag := fs.Bool("w", false, "list the room's modules for the week")
	if err := fs.Parse(flags); err != nil {
		return apperrors.Wrap(err, apperrors.ErrUsage.Code, apperrors.ErrUsage.ExitCode, "usage: lectio get-room <id> [time] [-n|-d|-w]")
	}
	if len(pos) == 0 {
		return apperrors.Clone(apperrors.ErrUsage, "usage: lectio get-room <id> [time] [-n|-d|-w]")
	}

	room, err := a.svc.RoomByID(ctx, pos[0])
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Clone(apperrors.ErrNotFound, "no room with such id")
		}
		return err
	}

	instant := a.clock()
	if len(pos) > 1 {
		if instant, err = schedule.ParseInstant(pos[1]); err != nil {
			return err
		}
	}

	entity := lectio.RoomEntity(room.ID)
	span, _ := spanFromFlags(*nowFlag, *dayFlag, *weekFlag)

	switch span {
	case schedule.SpanDay:
		mods, err := a.svc.Schedule(ctx, entity, schedule.Resolve(schedule.SpanDay, instant))
		if err != nil {
			return err
		}
		if len(mods) == 0 {
			return apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("%s has no modules on %s", room.Name, instant.Format(dateLayout)))
		}
		a.printSchedule(mods)
	case schedule.SpanWeek:
		win := schedule.Resolve(schedule.SpanWeek, instant)
		mods, err := a.svc.Schedule(ctx, entity, win)
		if err != nil {
			return err
		}
		if len(mods) == 0 {
			return apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("%s has no modules in the week of %s", room.Name, win.Start.Format(dateLayout)))
		}
		a.printGrouped(schedule.GroupByDay(mods))
		fmt.Fprintf(a.out, "\nTotal scheduled time: %s\n", formatDuration(schedule.Total(mods)))
	default:
		return a.printAvailability(ctx, entity, room.Name, instant)
	}
	return nil
}

// printAvailability fetches the room's entries for the instant's day and
// resolves occupancy against them.
func (a *App) printAvailability(ctx context.Context, entity lectio.Entity, name string, instant time.Time) error {
	mods, err := a.svc.Schedule(ctx, entity, schedule.Resolve(schedule.SpanDay, instant))
	if err != nil {
		return err
	}

	occ := schedule.At(mods, instant)
	if occ.Available {
		fmt.Fprintf(a.out, "%s is available at %s\n", name, instant.Format(instantLayout))
		return nil
	}

	fmt.Fprintf(a.out, "%s is occupied at %s:\n", name, instant.Format(instantLayout))
	a.printSchedule(occ.Conflicts)
	return nil
}
