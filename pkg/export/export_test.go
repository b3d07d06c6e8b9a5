package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTimetable() Timetable {
	return Timetable{
		Title:   "Timetable 2024-06-12",
		Headers: []string{"Subject", "Room", "Start"},
		Rows: [][]string{
			{"Math", "A101", "2024-06-12 08:00"},
			{"Physics", "B204", "2024-06-12 10:00"},
		},
	}
}

func TestCSVExporter(t *testing.T) {
	data, err := NewCSVExporter().Render(sampleTimetable())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Subject,Room,Start\n")
	assert.Contains(t, out, "Math,A101,2024-06-12 08:00\n")
	assert.Contains(t, out, "Physics,B204,2024-06-12 10:00\n")
}

func TestCSVExporter_RequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Timetable{})
	assert.Error(t, err)
}

func TestPDFExporter(t *testing.T) {
	data, err := NewPDFExporter().Render(sampleTimetable())
	require.NoError(t, err)

	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExporter_RequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Timetable{})
	assert.Error(t, err)
}
