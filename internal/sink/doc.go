// Package sink persists finished monitor reports.
//
// Sink is a single-method interface so the monitor engine can be tested
// against an in-memory implementation. Two real sinks are provided:
//
//   - JSONSink — the canonical {"readings": [...], "summary": {...}} report
//     file, 2-space indented, overwritten each run.
//   - PromSink — the summary as Prometheus text exposition, written as a
//     local textfile for a scrape agent to collect. This process never opens
//     a network listener.
package sink
