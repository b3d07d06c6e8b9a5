package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/noah-isme/lectio-cli/internal/lectio"
	"github.com/noah-isme/lectio-cli/internal/models"
	"github.com/noah-isme/lectio-cli/internal/schedule"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

func (a *App) runUser(ctx context.Context, args []string) error {
	flags, pos := splitArgs(args)
	fs := flag.NewFlagSet("user", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	nowFlag := fs.Bool("n", false, "show the user's ongoing module")
	dayFlag := fs.Bool("d", false, "show the user's schedule for today")
	weekFlag := fs.Bool("w", false, "show the user's schedule for this week")
	if err := fs.Parse(flags); err != nil {
		return apperrors.Wrap(err, apperrors.ErrUsage.Code, apperrors.ErrUsage.ExitCode, "usage: lectio user [id] [-n|-d|-w]")
	}

	user, err := a.resolveUser(ctx, pos)
	if err != nil {
		return err
	}

	a.printUsers([]models.User{*user})
	if user.ImageURL != "" {
		fmt.Fprintf(a.out, "Portrait:\n%s\n", user.ImageURL)
	}

	span, ok := spanFromFlags(*nowFlag, *dayFlag, *weekFlag)
	if !ok {
		return nil
	}

	win := schedule.Resolve(span, a.clock())
	mods, err := a.svc.Schedule(ctx, lectio.UserEntity(user.ID), win)
	if err != nil {
		return err
	}
	if len(mods) == 0 {
		if span == schedule.SpanNow {
			return apperrors.Clone(apperrors.ErrNoOngoingModule, fmt.Sprintf("%s has no ongoing modules", user.Name))
		}
		return apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("no modules scheduled for %s", user.Name))
	}

	fmt.Fprintln(a.out)
	if span == schedule.SpanWeek {
		a.printGrouped(schedule.GroupByDay(mods))
		fmt.Fprintf(a.out, "\nTotal scheduled time: %s\n", formatDuration(schedule.Total(mods)))
		return nil
	}
	a.printSchedule(mods)
	return nil
}

// resolveUser looks up the requested user: a given id is tried as a student
// first, then as a teacher; without an id the own profile is shown.
func (a *App) resolveUser(ctx context.Context, pos []string) (*models.User, error) {
	if len(pos) == 0 {
		return a.svc.Me(ctx)
	}

	id := pos[0]
	user, err := a.svc.UserByID(ctx, id, models.RoleStudent)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		user, err = a.svc.UserByID(ctx, id, models.RoleTeacher)
	}
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Clone(apperrors.ErrNotFound, "no user with such id")
		}
		return nil, err
	}
	return user, nil
}

func (a *App) runSearch(ctx context.Context, args []string) error {
	flags, pos := splitArgs(args)
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	studentFlag := fs.Bool("s", false, "only search for students")
	teacherFlag := fs.Bool("t", false, "only search for teachers")
	if err := fs.Parse(flags); err != nil {
		return apperrors.Wrap(err, apperrors.ErrUsage.Code, apperrors.ErrUsage.ExitCode, "usage: lectio search <term> [-s|-t]")
	}
	if len(pos) == 0 {
		return apperrors.Clone(apperrors.ErrUsage, "usage: lectio search <term> [-s|-t]")
	}

	var role models.UserRole
	switch {
	case *studentFlag && !*teacherFlag:
		role = models.RoleStudent
	case *teacherFlag && !*studentFlag:
		role = models.RoleTeacher
	}

	users, err := a.svc.SearchUsers(ctx, pos[0], role)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return apperrors.Clone(apperrors.ErrNotFound, fmt.Sprintf("no users matching %q", pos[0]))
	}
	a.printUsers(users)
	return nil
}
