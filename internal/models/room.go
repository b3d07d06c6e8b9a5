package models

import "regexp"

var roomNamePattern = regexp.MustCompile(`^(\S+) \((.+)\)$`)

// Room represents a bookable location at the institution. Name is the raw
// display name as the service reports it, typically "label (description)".
type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SplitName decomposes the raw name into its short label and description.
// Names that do not follow the "label (description)" convention report ok
// false and are skipped by listings rather than treated as errors.
func (r Room) SplitName() (label, description string, ok bool) {
	m := roomNamePattern.FindStringSubmatch(r.Name)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
