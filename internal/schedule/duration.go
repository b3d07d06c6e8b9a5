package schedule

import (
	"time"

	"github.com/noah-isme/lectio-cli/internal/models"
)

// Total returns the summed scheduled time of the given modules. The fold is
// seeded with a zero duration rather than the first element, so zero-length
// modules and empty input both total correctly.
func Total(mods []models.Module) time.Duration {
	var total time.Duration
	for _, m := range mods {
		total += m.Duration()
	}
	return total
}
