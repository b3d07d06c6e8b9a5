package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabeler(t *testing.T) {
	l := NewLabeler("", 0)

	cases := []struct {
		raw  string
		want string
	}{
		{"", "?"},
		{"   ", "?"},
		{"John Smith (JS)", "JS"},
		{"Jane Doe (JD)", "JD"},
		{"A, B, C, D", "A, B, ..."},
		{"Alice, Bob", "Alice, Bob"},
		{"Alice", "Alice"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, l.Label(tc.raw), "raw=%q", tc.raw)
	}
}

func TestLabeler_CustomPolicy(t *testing.T) {
	l := NewLabeler("-", 3)

	assert.Equal(t, "-", l.Label(""))
	assert.Equal(t, "A, B, C, ...", l.Label("A, B, C, D, E"))
	assert.Equal(t, "A, B, C", l.Label("A, B, C"))
}

func TestLabeler_ParentheticalWinsOverNames(t *testing.T) {
	l := NewLabeler("", 0)

	assert.Equal(t, "JS", l.Label("John Smith, Jane Doe, Joe Bloggs (JS)"))
}
