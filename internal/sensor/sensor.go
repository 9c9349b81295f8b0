package sensor

import "math"

// Reading maps a sensor name to one sampled value. A Reading always carries
// exactly the configured sensor keys and is never mutated after creation.
type Reading map[string]float64

// Bounds is the normal operating range for one sensor. Values strictly
// outside [Min, Max] are anomalous.
type Bounds struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the bounds, endpoints included.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Range is the generation range for one sensor. It is intentionally wider
// than the sensor's Bounds so that synthetic runs produce some anomalies.
type Range struct {
	Lo float64
	Hi float64
}

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
