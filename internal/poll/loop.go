// Package poll drives the bootstrap → fetch → decode → normalize → write
// cycle on a fixed interval. Cycles run strictly sequentially; the only
// concurrency is the per-marker write fan-out inside a cycle.
package poll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"tramflux/internal/config"
	"tramflux/internal/normalize"
	"tramflux/internal/sink"
)

// Loop is the poll orchestrator. No state survives a cycle except the sink
// client and the statistics below.
type Loop struct {
	Source      Source
	Sink        sink.Sink
	Measurement string
	Interval    time.Duration

	// OnCycleError and OnWriteError are the configured failure policies;
	// see the config package constants.
	OnCycleError string
	OnWriteError string

	// Heartbeat is a best-effort liveness ping sent after each clean cycle;
	// may be nil.
	Heartbeat func()

	mu          sync.Mutex
	cycles      int64
	lastCycle   time.Time
	lastMarkers int
	lastWritten int
	lastError   string
}

// Snapshot is the loop state reported by the status endpoint.
type Snapshot struct {
	Cycles      int64     `json:"cycles"`
	LastCycle   time.Time `json:"last_cycle"`
	LastMarkers int       `json:"last_markers"`
	LastWritten int       `json:"last_written"`
	LastError   string    `json:"last_error,omitempty"`
}

// Run executes cycles until ctx is cancelled. Errors inside a cycle abort
// that cycle only; whether they also end the loop is the configured policy.
// The returned error is ctx.Err() after cancellation, or the fatal error
// under a terminate policy.
func (l *Loop) Run(ctx context.Context) error {
	t := time.NewTimer(0)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}

		if err := l.cycle(ctx); err != nil {
			l.recordError(err)
			log.Error().Err(err).Msg("poll cycle failed")

			// cycle only surfaces a write error under the strict policy;
			// a visible crash beats silent data loss there
			var werr *sink.WriteError
			if errors.As(err, &werr) {
				return err
			}
			if l.OnCycleError == config.PolicyTerminate {
				return err
			}
		} else if l.Heartbeat != nil {
			l.Heartbeat()
		}

		t.Reset(l.Interval)
	}
}

func (l *Loop) cycle(ctx context.Context) error {
	markers, err := l.Source.Fetch(ctx)
	if err != nil {
		return err
	}

	samples := make([]normalize.Sample, len(markers))
	for i, m := range markers {
		samples[i] = normalize.Normalize(m)
	}

	errs := WriteBatch(ctx, l.Sink, l.Measurement, samples)
	for _, werr := range errs {
		log.Error().Err(werr).Msg("sink write failed")
	}
	l.record(len(markers), len(markers)-len(errs))
	log.Info().Int("markers", len(markers)).Int("failed_writes", len(errs)).Msg("cycle complete")

	if len(errs) > 0 && l.OnWriteError == config.PolicyTerminate {
		return fmt.Errorf("poll: %d of %d writes failed: %w", len(errs), len(markers), errs[0])
	}
	return nil
}

func (l *Loop) record(markers, written int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cycles++
	l.lastCycle = time.Now()
	l.lastMarkers = markers
	l.lastWritten = written
	l.lastError = ""
}

func (l *Loop) recordError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastError = err.Error()
}

// Stats returns a copy of the loop state for reporting.
func (l *Loop) Stats() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Cycles:      l.cycles,
		LastCycle:   l.lastCycle,
		LastMarkers: l.lastMarkers,
		LastWritten: l.lastWritten,
		LastError:   l.lastError,
	}
}
