// Package sink is the time-series store boundary. The poller only ever
// issues independent single-point writes; everything else (batching, schema,
// retention) belongs to the store.
package sink

import (
	"context"
	"fmt"
	"time"

	"tramflux/internal/normalize"
)

// Point is one time-series write: tags are the indexed dimensions, fields
// the measured values.
type Point struct {
	Measurement string
	Tags        map[string]string
	Fields      map[string]any
	Time        time.Time
}

// WriteError is a per-point write failure. It never aborts sibling writes in
// the same cycle; the loop's write policy decides whether it is fatal to the
// process.
type WriteError struct {
	Measurement string
	Err         error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("sink: writing %s point: %v", e.Measurement, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Sink is a time-series store the poll loop writes into. The client is
// long-lived and reused across cycles; it is only invoked, never mutated.
type Sink interface {
	// EnsureSchema creates the target database or table if absent. Called
	// once at startup, before the first cycle.
	EnsureSchema(ctx context.Context) error
	WritePoint(ctx context.Context, p Point) error
	Close() error
}

// FromSample converts a canonical sample into a write-ready point. An
// omitted delay stays omitted; it is never written as a zero placeholder.
func FromSample(measurement string, s normalize.Sample, at time.Time) Point {
	fields := map[string]any{
		"latitude":  s.Latitude,
		"longitude": s.Longitude,
	}
	if s.DelaySeconds != nil {
		fields["delay"] = *s.DelaySeconds
	}
	return Point{Measurement: measurement, Tags: s.Tags, Fields: fields, Time: at}
}
