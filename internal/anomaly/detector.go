package anomaly

import (
	"fmt"
	"sync"

	"github.com/edgewatch/edgewatch/internal/sensor"
)

// Set maps a sensor name to its offending value. A Set is produced per tick
// and not retained by the detector.
type Set map[string]float64

// Detector flags readings that fall strictly outside their sensor's normal
// operating bounds.
//
// Bounds can be swapped at runtime via SetBounds, so a continuous monitor
// picks up config reloads without restarting. All methods are safe for
// concurrent use.
type Detector struct {
	mu     sync.RWMutex
	bounds map[string]sensor.Bounds
}

// New creates a Detector with the given per-sensor bounds.
func New(bounds map[string]sensor.Bounds) *Detector {
	return &Detector{bounds: bounds}
}

// Detect compares every value in r against its sensor's bounds and returns
// the out-of-range entries. An empty Set means the reading is healthy.
//
// Every sensor in r must have configured bounds; the sampler guarantees this
// by construction, so a missing entry is an invariant violation and returns
// an error rather than being skipped silently.
func (d *Detector) Detect(r sensor.Reading) (Set, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(Set)
	for name, value := range r {
		b, ok := d.bounds[name]
		if !ok {
			return nil, fmt.Errorf("anomaly: no bounds configured for sensor %q", name)
		}
		if !b.Contains(value) {
			out[name] = value
		}
	}
	return out, nil
}

// SetBounds replaces the detector's bounds. Subsequent Detect calls use the
// new limits; the call does not re-evaluate past readings.
func (d *Detector) SetBounds(bounds map[string]sensor.Bounds) {
	d.mu.Lock()
	d.bounds = bounds
	d.mu.Unlock()
}
