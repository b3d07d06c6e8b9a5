package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/lectio-cli/internal/models"
)

func TestTotal(t *testing.T) {
	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	mods := []models.Module{
		mod("Math", day.Add(8*time.Hour), day.Add(9*time.Hour+30*time.Minute)),
		mod("Physics", day.Add(10*time.Hour), day.Add(11*time.Hour)),
		mod("Assembly", day.Add(12*time.Hour), day.Add(12*time.Hour)), // zero length
		mod("Chemistry", day.Add(12*time.Hour), day.Add(13*time.Hour+15*time.Minute)),
	}

	var want time.Duration
	for _, m := range mods {
		want += m.EndTime.Sub(m.StartTime)
	}

	assert.Equal(t, want, Total(mods))
	assert.Equal(t, 3*time.Hour+45*time.Minute, Total(mods))
}

func TestTotal_Empty(t *testing.T) {
	assert.Equal(t, time.Duration(0), Total(nil))
}

func TestTotal_ZeroLengthFirstModule(t *testing.T) {
	// a zero-length leading module must not be swallowed by accumulator
	// seeding
	day := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)
	mods := []models.Module{
		mod("Assembly", day.Add(8*time.Hour), day.Add(8*time.Hour)),
		mod("Math", day.Add(9*time.Hour), day.Add(10*time.Hour)),
	}

	assert.Equal(t, time.Hour, Total(mods))
}
