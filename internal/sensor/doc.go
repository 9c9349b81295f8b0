// Package sensor defines the shared leaf types for sensor data: Reading,
// Bounds and Range. These are the canonical in-memory representations used by
// the sampler, detector, summarizer and sinks.
package sensor
