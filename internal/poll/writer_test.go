package poll

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tramflux/internal/normalize"
	"tramflux/internal/sink"
)

// stubSink records written points and fails for vehicles on its blocklist.
type stubSink struct {
	mu       sync.Mutex
	written  []sink.Point
	failFor  map[string]bool
	failAll  bool
	ensureOK bool
}

func (s *stubSink) EnsureSchema(ctx context.Context) error {
	s.ensureOK = true
	return nil
}

func (s *stubSink) WritePoint(ctx context.Context, p sink.Point) error {
	if s.failAll || s.failFor[p.Tags["vehicle"]] {
		return &sink.WriteError{Measurement: p.Measurement, Err: errors.New("boom")}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, p)
	return nil
}

func (s *stubSink) Close() error { return nil }

func (s *stubSink) writtenVehicles() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.written))
	for _, p := range s.written {
		out[p.Tags["vehicle"]] = true
	}
	return out
}

func sampleWithVehicle(id string) normalize.Sample {
	return normalize.Sample{
		Latitude:  50.98,
		Longitude: 11.03,
		Tags:      map[string]string{"vehicle": id},
	}
}

func TestWriteBatch_FailureDoesNotBlockSiblings(t *testing.T) {
	snk := &stubSink{failFor: map[string]bool{"666": true}}
	samples := []normalize.Sample{
		sampleWithVehicle("601"),
		sampleWithVehicle("666"),
		sampleWithVehicle("218"),
	}

	errs := WriteBatch(context.Background(), snk, "vehicle_position", samples)

	if len(errs) != 1 {
		t.Fatalf("expected 1 write error, got %d", len(errs))
	}
	var werr *sink.WriteError
	if !errors.As(errs[0], &werr) {
		t.Fatalf("expected *sink.WriteError, got %T", errs[0])
	}

	written := snk.writtenVehicles()
	if !written["601"] || !written["218"] {
		t.Errorf("sibling writes missing: %v", written)
	}
	if written["666"] {
		t.Error("failed write should not be recorded")
	}
}

func TestWriteBatch_AllSettle(t *testing.T) {
	snk := &stubSink{}
	samples := make([]normalize.Sample, 50)
	for i := range samples {
		samples[i] = sampleWithVehicle("601")
	}

	if errs := WriteBatch(context.Background(), snk, "vehicle_position", samples); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(snk.written) != 50 {
		t.Errorf("written = %d, want 50", len(snk.written))
	}
}

func TestWriteBatch_Empty(t *testing.T) {
	snk := &stubSink{}
	if errs := WriteBatch(context.Background(), snk, "vehicle_position", nil); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
