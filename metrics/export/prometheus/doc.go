// Package prometheus provides Prometheus collectors for goConsole metrics.
//
// [NewPrometheusExporter] accepts a [goConsole.Console] and exposes an [http.Handler]
// that renders all goConsole counters and histograms in Prometheus text exposition format.
// Counter names are prefixed goconsole_*_total; the single histogram is
// goconsole_write_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate console state.
package prometheus
