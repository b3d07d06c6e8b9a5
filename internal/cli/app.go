// Package cli implements the subcommand surface on top of the schedule
// engine. Handlers resolve a time window, fetch entries through the service
// interface, pipe them through the engine and hand formatted rows to the
// renderer.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/lectio-cli/internal/lectio"
	"github.com/noah-isme/lectio-cli/internal/models"
	"github.com/noah-isme/lectio-cli/internal/schedule"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

const usage = `Usage: lectio <command> [arguments]

Commands:
  now                        show the ongoing module
  day [date]                 show the modules of a day (default today)
  next                       show the next upcoming module
  week [date]                show the week's modules, grouped by day
  overview [date]            show a day with totals and subject distribution
  user [id] [-n|-d|-w]       show a user profile and optionally a schedule
  search <term> [-s|-t]      search users, optionally students/teachers only
  rooms [term]               list rooms
  get-room <id> [time] [-n|-d|-w]  check room availability
  export [date] [-f csv|pdf] [-o path]  export a day's timetable

Dates use YYYY-MM-DD, room times use YYYY-MM-DD-HH-MM.
`

// Params wires an App's collaborators; unset fields get defaults.
type Params struct {
	Service lectio.Service
	Labels  schedule.Labeler
	Clock   func() time.Time
	Out     io.Writer
	Logger  *zap.Logger
}

// App dispatches subcommands against the scheduling service.
type App struct {
	svc    lectio.Service
	labels schedule.Labeler
	clock  func() time.Time
	out    io.Writer
	logger *zap.Logger
}

// New constructs an App.
func New(p Params) *App {
	if p.Labels.MaxNames == 0 {
		p.Labels = schedule.NewLabeler("", 0)
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
	if p.Out == nil {
		p.Out = os.Stdout
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	return &App{svc: p.Service, labels: p.Labels, clock: p.Clock, out: p.Out, logger: p.Logger}
}

// Run executes one command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return apperrors.Clone(apperrors.ErrUsage, "missing command")
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug("dispatching command", zap.String("command", cmd))

	switch cmd {
	case "now":
		return a.runNow(ctx)
	case "day":
		return a.runDay(ctx, rest)
	case "next":
		return a.runNext(ctx)
	case "week":
		return a.runWeek(ctx, rest)
	case "overview":
		return a.runOverview(ctx, rest)
	case "user":
		return a.runUser(ctx, rest)
	case "search":
		return a.runSearch(ctx, rest)
	case "rooms":
		return a.runRooms(ctx, rest)
	case "get-room":
		return a.runGetRoom(ctx, rest)
	case "export":
		return a.runExport(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return apperrors.Clone(apperrors.ErrUsage, fmt.Sprintf("unknown command %q", cmd))
	}
}

// splitArgs separates flags from positional arguments so commands accept
// flags after positionals, the way the tool has always been invoked.
func splitArgs(args []string) (flags, positionals []string) {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			flags = append(flags, arg)
		} else {
			positionals = append(positionals, arg)
		}
	}
	return flags, positionals
}

// spanFromFlags maps the -n/-d/-w trio to a span; ok is false when none is
// set.
func spanFromFlags(now, day, week bool) (schedule.Span, bool) {
	switch {
	case now:
		return schedule.SpanNow, true
	case day:
		return schedule.SpanDay, true
	case week:
		return schedule.SpanWeek, true
	default:
		return schedule.SpanNow, false
	}
}

// entitySource adapts the service to the lookahead search's Source for one
// fixed entity.
type entitySource struct {
	svc    lectio.Service
	entity lectio.Entity
}

func (s entitySource) Schedule(ctx context.Context, win models.Window) ([]models.Module, error) {
	return s.svc.Schedule(ctx, s.entity, win)
}

// meEntity resolves the authenticated user into a schedule entity.
func (a *App) meEntity(ctx context.Context) (lectio.Entity, error) {
	me, err := a.svc.Me(ctx)
	if err != nil {
		return lectio.Entity{}, err
	}
	return lectio.UserEntity(me.ID), nil
}
