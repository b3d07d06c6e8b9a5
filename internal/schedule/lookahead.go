package schedule

import (
	"context"
	"time"

	"github.com/noah-isme/lectio-cli/internal/models"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

// Source supplies ordered schedule entries for a window. The lookahead search
// is the only engine component that retrieves; handing it a narrow interface
// keeps it testable without a live service.
type Source interface {
	Schedule(ctx context.Context, win models.Window) ([]models.Module, error)
}

const (
	initialLookahead = time.Hour
	lookaheadStep    = time.Hour
	lookaheadBound   = 5 * 24 * time.Hour
)

// Next finds the first module starting strictly after now. It queries a
// one-hour window and, while the result still ends at or before now, widens
// the window by another hour and retries. Each retry strictly grows the
// window, so the search terminates; past the five-day bound it gives up with
// ErrNoUpcomingModule. Service failures propagate unchanged and are never
// reported as an absent module.
func Next(ctx context.Context, src Source, now time.Time) (models.Module, error) {
	for horizon := initialLookahead; horizon <= lookaheadBound; horizon += lookaheadStep {
		mods, err := src.Schedule(ctx, models.Window{Start: now, End: now.Add(horizon)})
		if err != nil {
			return models.Module{}, err
		}
		if len(mods) == 0 || !mods[len(mods)-1].StartTime.After(now) {
			continue
		}
		// Several modules may start inside the widened window; the earliest
		// future one is the answer, not the last entry.
		for _, m := range mods {
			if m.StartTime.After(now) {
				return m, nil
			}
		}
	}
	return models.Module{}, apperrors.Clone(apperrors.ErrNoUpcomingModule, "no upcoming module within the next 5 days")
}
