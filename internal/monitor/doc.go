// Package monitor contains the run driver. Engine.Run loops
// sample → append → detect → pause for the configured number of ticks
// (or until cancellation in continuous mode), then computes the health
// summary and flushes the {readings, summary} report through every sink.
//
// The run is fully sequential: one goroutine owns the log, and the only
// suspension point is the tick pause.
package monitor
