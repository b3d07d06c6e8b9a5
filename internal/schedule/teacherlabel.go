package schedule

import (
	"regexp"
	"strings"
)

// trailing parenthetical, e.g. "Jane Doe (JD)"
var initialsPattern = regexp.MustCompile(`\(([^()]+)\)\s*$`)

// Labeler shortens raw teacher descriptors for display. The rules mirror the
// institution's naming convention and are policy, not fact; both knobs are
// exposed through configuration.
type Labeler struct {
	// Placeholder replaces an empty descriptor.
	Placeholder string
	// MaxNames bounds how many comma-separated names are shown before the
	// rest is elided.
	MaxNames int
}

// NewLabeler builds a Labeler, falling back to "?" and two names when the
// arguments are unset.
func NewLabeler(placeholder string, maxNames int) Labeler {
	if placeholder == "" {
		placeholder = "?"
	}
	if maxNames < 1 {
		maxNames = 2
	}
	return Labeler{Placeholder: placeholder, MaxNames: maxNames}
}

// Label derives the short display label for a raw teacher descriptor:
// the placeholder for an empty descriptor, the content of a trailing
// parenthetical when present, the first MaxNames names plus ", ..." when more
// are listed, and the descriptor verbatim otherwise.
func (l Labeler) Label(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return l.Placeholder
	}
	if m := initialsPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	names := strings.Split(raw, ", ")
	if len(names) > l.MaxNames {
		return strings.Join(names[:l.MaxNames], ", ") + ", ..."
	}
	return raw
}
