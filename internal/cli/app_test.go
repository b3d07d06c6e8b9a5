package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lectio-cli/internal/lectio"
	"github.com/noah-isme/lectio-cli/internal/models"
	apperrors "github.com/noah-isme/lectio-cli/pkg/errors"
)

// fakeService substitutes the scheduling service for command tests. Schedules
// are keyed per entity; requests return the modules intersecting the window,
// expanded to whole days when the window is truncated.
type fakeService struct {
	me        models.User
	users     map[string]models.User // keyed id/role
	search    []models.User
	rooms     []models.Room
	schedules map[string][]models.Module // keyed kind:id
	err       error

	scheduleCalls []models.Window
}

func userKey(id string, role models.UserRole) string { return id + "/" + string(role) }

func entityKey(e lectio.Entity) string { return string(e.Kind) + ":" + e.ID }

func (f *fakeService) Schedule(_ context.Context, entity lectio.Entity, win models.Window) ([]models.Module, error) {
	f.scheduleCalls = append(f.scheduleCalls, win)
	if f.err != nil {
		return nil, f.err
	}
	start, end := win.Start, win.End
	if win.Truncate {
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)
	}
	var out []models.Module
	for _, m := range f.schedules[entityKey(entity)] {
		if m.Intersects(start, end) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeService) Me(context.Context) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	me := f.me
	return &me, nil
}

func (f *fakeService) UserByID(_ context.Context, id string, role models.UserRole) (*models.User, error) {
	if u, ok := f.users[userKey(id, role)]; ok {
		return &u, nil
	}
	return nil, apperrors.Clone(apperrors.ErrNotFound, "")
}

func (f *fakeService) SearchUsers(context.Context, string, models.UserRole) ([]models.User, error) {
	return f.search, nil
}

func (f *fakeService) RoomByID(_ context.Context, id string) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.ID == id {
			room := r
			return &room, nil
		}
	}
	return nil, apperrors.Clone(apperrors.ErrNotFound, "")
}

func (f *fakeService) SearchRooms(context.Context, string) ([]models.Room, error) {
	return f.rooms, nil
}

var testNow = time.Date(2024, 6, 12, 11, 30, 0, 0, time.UTC) // a Wednesday

func newTestApp(svc lectio.Service) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	app := New(Params{
		Service: svc,
		Clock:   func() time.Time { return testNow },
		Out:     out,
	})
	return app, out
}

func testModule(subject, room, teacher string, start time.Time, d time.Duration) models.Module {
	return models.Module{
		Subject:   subject,
		Room:      room,
		Teacher:   teacher,
		StartTime: start,
		EndTime:   start.Add(d),
	}
}

func meService(mods ...models.Module) *fakeService {
	return &fakeService{
		me:        models.User{ID: "user-1", Name: "John Doe", ClassName: "3A", Initials: "JD", Role: models.RoleStudent},
		schedules: map[string][]models.Module{"user:user-1": mods},
	}
}

func assertErrCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, apperrors.FromError(err).Code)
	assert.Equal(t, 1, apperrors.ExitCodeOf(err))
}

func TestRun_UnknownCommand(t *testing.T) {
	app, out := newTestApp(meService())

	err := app.Run(context.Background(), []string{"frobnicate"})

	assertErrCode(t, err, apperrors.ErrUsage.Code)
	assert.Contains(t, out.String(), "Usage")
}

func TestRun_NoArgs(t *testing.T) {
	app, _ := newTestApp(meService())

	err := app.Run(context.Background(), nil)

	assertErrCode(t, err, apperrors.ErrUsage.Code)
}

func TestRun_Help(t *testing.T) {
	app, out := newTestApp(meService())

	require.NoError(t, app.Run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "get-room")
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, apperrors.ExitCodeOf(nil))
	assert.Equal(t, 1, apperrors.ExitCodeOf(errors.New("boom")))
	assert.Equal(t, 1, apperrors.ExitCodeOf(apperrors.ErrNoUpcomingModule))
}
