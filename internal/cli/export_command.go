package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/noah-isme/lectio-cli/internal/schedule"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
	"github.com/noah-isme/lectio-cli/pkg/export"
)

func (a *App) runExport(ctx context.Context, args []string) error {
	flags, pos := splitArgs(args)
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.String("f", "csv", "output format, csv or pdf")
	outPath := fs.String("o", "", "output file path")
	if err := fs.Parse(flags); err != nil {
		return apperrors.Wrap(err, apperrors.ErrUsage.Code, apperrors.ErrUsage.ExitCode, "usage: lectio export [date] [-f csv|pdf] [-o path]")
	}

	anchor, err := a.anchorDate(pos)
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

	day := anchor.Format(dateLayout)
	table := export.Timetable{
		Title:   "Timetable " + day,
		Headers: scheduleHeaders,
	}
	for _, m := range mods {
		subject := m.Subject
		if subject == "" {
			subject = m.Title
		}
		table.Rows = append(table.Rows, []string{
			subject,
			m.Room,
			a.labels.Label(m.Teacher),
			m.StartTime.Format(instantLayout),
			m.EndTime.Format(instantLayout),
			m.Status.String(),
		})
	}

	var data []byte
	switch *format {
	case "csv":
		data, err = export.NewCSVExporter().Render(table)
	case "pdf":
		data, err = export.NewPDFExporter().Render(table)
	default:
		return apperrors.Clone(apperrors.ErrUsage, fmt.Sprintf("unsupported export format %q", *format))
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "render export")
	}

	path := *outPath
	if path == "" {
		path = fmt.Sprintf("timetable-%s.%s", day, *format)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.ExitCode, "write export file")
	}

	fmt.Fprintf(a.out, "Exported %d modules to %s\n", len(mods), path)
	return nil
}
