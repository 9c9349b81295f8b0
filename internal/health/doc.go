// Package health computes per-sensor run aggregates: arithmetic mean and
// sample standard deviation over the full reading log, each rounded to two
// decimal places.
package health
