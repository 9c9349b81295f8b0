package health

import (
	"fmt"
	"math"

	"github.com/edgewatch/edgewatch/internal/sensor"
)

// Stats holds the per-sensor aggregates for one run.
type Stats struct {
	Avg    float64 `json:"avg"`
	StdDev float64 `json:"std_dev"`
}

// Summary maps each sensor name to its run aggregates.
type Summary map[string]Stats

// Summarize computes the arithmetic mean and sample standard deviation of
// each named sensor across the full log, both rounded to two decimal places.
//
// Sample standard deviation uses the n-1 denominator and is reported as 0.0
// when fewer than two readings exist, since it is undefined for n=1.
//
// Summarize is a pure function over the log: the result does not depend on
// reading order and the log is not mutated. The log must contain at least
// one reading.
func Summarize(log []sensor.Reading, names []string) (Summary, error) {
	if len(log) == 0 {
		return nil, fmt.Errorf("health: cannot summarize an empty log")
	}

	out := make(Summary, len(names))
	for _, name := range names {
		values := make([]float64, 0, len(log))
		for _, r := range log {
			if v, ok := r[name]; ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("health: sensor %q absent from every reading", name)
		}
		out[name] = Stats{
			Avg:    sensor.Round2(mean(values)),
			StdDev: sensor.Round2(stdDev(values)),
		}
	}
	return out, nil
}

// mean returns the arithmetic mean of values. values must be non-empty.
func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev returns the sample standard deviation of values, or 0 when fewer
// than two values exist.
func stdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1))
}
