package internaldefs

import (
	goConsole "github.com/MrEthical07/goConsole"
)

// CounterDef defines a public type used by goConsole APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goConsole.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goConsole APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goConsole.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the console engine.
var CounterDefs = []CounterDef{
	{ID: goConsole.MetricBytesReceived, Name: "goconsole_bytes_received_total", Help: "Bytes accepted into the inbound queue."},
	{ID: goConsole.MetricBytesDropped, Name: "goconsole_bytes_dropped_total", Help: "Bytes discarded at a full inbound queue."},
	{ID: goConsole.MetricLinesAssembled, Name: "goconsole_lines_assembled_total", Help: "Completed input lines."},
	{ID: goConsole.MetricLineOverflow, Name: "goconsole_line_overflow_total", Help: "Bytes discarded at a full line buffer."},
	{ID: goConsole.MetricAuthPrompts, Name: "goconsole_auth_prompts_total", Help: "Password prompts sent."},
	{ID: goConsole.MetricAuthSuccess, Name: "goconsole_auth_success_total", Help: "Successful authentication attempts."},
	{ID: goConsole.MetricAuthFailure, Name: "goconsole_auth_failure_total", Help: "Failed authentication attempts."},
	{ID: goConsole.MetricCommandsDispatched, Name: "goconsole_commands_dispatched_total", Help: "Command lines handed to the interpreter."},
	{ID: goConsole.MetricChunksWritten, Name: "goconsole_chunks_written_total", Help: "Response chunks transmitted successfully."},
	{ID: goConsole.MetricWriteFailure, Name: "goconsole_write_failure_total", Help: "Writes rejected or settled as failed."},
	{ID: goConsole.MetricWriteTimeout, Name: "goconsole_write_timeout_total", Help: "Writes whose status event never arrived in time."},
}

// HistogramDefs is an exported constant or variable used by the console engine.
var HistogramDefs = []HistogramDef{
	{ID: goConsole.MetricWriteLatency, Name: "goconsole_write_latency_seconds", Help: "Write-to-status latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the console engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the console engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
