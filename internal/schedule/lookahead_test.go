package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lectio-cli/internal/models"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

// stubSource serves the modules intersecting the requested window, the way
// the live service does, and records every window it was asked for.
type stubSource struct {
	mods  []models.Module
	calls []models.Window
	err   error
}

func (s *stubSource) Schedule(_ context.Context, win models.Window) ([]models.Module, error) {
	s.calls = append(s.calls, win)
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Module
	for _, m := range s.mods {
		if m.Intersects(win.Start, win.End) {
			out = append(out, m)
		}
	}
	return out, nil
}

func mod(subject string, start, end time.Time) models.Module {
	return models.Module{Subject: subject, StartTime: start, EndTime: end}
}

func TestNext_WidensPastOngoingModule(t *testing.T) {
	now := time.Date(2024, 6, 12, 11, 30, 0, 0, time.UTC)
	day := now.Truncate(24 * time.Hour)
	src := &stubSource{mods: []models.Module{
		mod("Math", day.Add(11*time.Hour), day.Add(12*time.Hour)),
		mod("Physics", day.Add(13*time.Hour), day.Add(14*time.Hour)),
	}}

	next, err := Next(context.Background(), src, now)

	require.NoError(t, err)
	assert.Equal(t, "Physics", next.Subject)
	// one-hour window only caught the ongoing module, one retry reached 13:00
	require.Len(t, src.calls, 2)
	assert.Equal(t, now.Add(time.Hour), src.calls[0].End)
	assert.Equal(t, now.Add(2*time.Hour), src.calls[1].End)
}

func TestNext_ReturnsEarliestFutureModule(t *testing.T) {
	now := time.Date(2024, 6, 12, 9, 30, 0, 0, time.UTC)
	day := now.Truncate(24 * time.Hour)
	src := &stubSource{mods: []models.Module{
		mod("Math", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		mod("Physics", day.Add(10*time.Hour), day.Add(11*time.Hour)),
		mod("Chemistry", day.Add(10*time.Hour+15*time.Minute), day.Add(11*time.Hour)),
	}}

	next, err := Next(context.Background(), src, now)

	require.NoError(t, err)
	assert.Equal(t, "Physics", next.Subject, "the earliest future module wins, not the last one in the window")
}

func TestNext_GivesUpPastBound(t *testing.T) {
	now := time.Date(2024, 6, 12, 11, 0, 0, 0, time.UTC)
	src := &stubSource{}

	_, err := Next(context.Background(), src, now)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNoUpcomingModule.Code, apperrors.FromError(err).Code)
	// windows are widened one hour at a time up to the five-day bound
	assert.Len(t, src.calls, 120)
	assert.Equal(t, now.Add(lookaheadBound), src.calls[len(src.calls)-1].End)
}

func TestNext_ServiceErrorIsNotAbsence(t *testing.T) {
	now := time.Date(2024, 6, 12, 11, 0, 0, 0, time.UTC)
	src := &stubSource{err: apperrors.Clone(apperrors.ErrServiceUnavailable, "")}

	_, err := Next(context.Background(), src, now)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrServiceUnavailable.Code, apperrors.FromError(err).Code)
	assert.Len(t, src.calls, 1)
}
