package poll

import (
	"context"
	"sync"
	"time"

	"tramflux/internal/normalize"
	"tramflux/internal/sink"
)

// WriteBatch fans one cycle's samples out to the sink, one independent write
// per marker, and waits for all of them to settle. A failed write never
// blocks, delays or rolls back a sibling; the failures come back as the
// returned slice, in no particular order.
func WriteBatch(ctx context.Context, s sink.Sink, measurement string, samples []normalize.Sample) []error {
	now := time.Now()
	errCh := make(chan error, len(samples))

	var wg sync.WaitGroup
	for _, sample := range samples {
		wg.Add(1)
		go func(sm normalize.Sample) {
			defer wg.Done()
			if err := s.WritePoint(ctx, sink.FromSample(measurement, sm, now)); err != nil {
				errCh <- err
			}
		}(sample)
	}
	wg.Wait()
	close(errCh)

	var errs []error
	for err := range errCh {
		errs = append(errs, err)
	}
	return errs
}
