// Package metrics provides the MetricsRecorder interface and a noop implementation.
package metrics

import "time"

// MetricsRecorder is the interface for recording conversion metrics.
type MetricsRecorder interface {
	RecordParse(converter string)
	RecordParseError(converter string)
	RecordFormat(converter string)
	RecordLatency(converter, op string, d time.Duration)
}

// Noop is a MetricsRecorder that discards all data.
type Noop struct{}

func (Noop) RecordParse(converter string)                        {}
func (Noop) RecordParseError(converter string)                   {}
func (Noop) RecordFormat(converter string)                       {}
func (Noop) RecordLatency(converter, op string, d time.Duration) {}
