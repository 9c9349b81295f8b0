package sink

import (
	"github.com/edgewatch/edgewatch/internal/health"
	"github.com/edgewatch/edgewatch/internal/sensor"
)

// Report is the complete output of one monitor run: the chronological
// reading log plus the per-sensor health summary.
type Report struct {
	Readings []sensor.Reading `json:"readings"`
	Summary  health.Summary   `json:"summary"`
}

// Sink persists a finished report. Implementations overwrite any previous
// output; there is no append mode.
//
// The monitor engine only depends on this interface, so its logic is
// testable without touching the filesystem.
type Sink interface {
	Write(rep *Report) error
}
