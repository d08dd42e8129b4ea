package probe

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"gitproxy_switch/internal/shared/logger"
	"gitproxy_switch/internal/shared/types"
)

// Tester is the synchronous probe run by a Worker.
type Tester interface {
	Test(ctx context.Context, proxy types.ProxyURL) types.ProbeResult
}

// Worker runs probes off the caller's goroutine, one at a time.
type Worker struct {
	tester Tester
	sem    *semaphore.Weighted
}

// NewWorker wraps tester.
func NewWorker(tester Tester) *Worker {
	return &Worker{
		tester: tester,
		sem:    semaphore.NewWeighted(1),
	}
}

// Start launches a probe and returns immediately. The channel yields exactly
// one result and is then closed. While a probe is running Start returns
// types.ErrProbeInFlight.
func (w *Worker) Start(ctx context.Context, proxy types.ProxyURL) (<-chan types.ProbeResult, error) {
	if !w.sem.TryAcquire(1) {
		return nil, types.ErrProbeInFlight
	}

	id := uuid.NewString()
	l := logger.WithComponent("Probe")
	l.Info().Str("probe_id", id).Str("proxy", proxy.String()).Msg("Connectivity test started.")

	results := make(chan types.ProbeResult, 1)
	go func() {
		defer close(results)
		defer w.sem.Release(1)

		res := w.tester.Test(ctx, proxy)

		ev := l.Info()
		if res.Outcome != types.ProbeSuccess {
			ev = l.Warn().Str("reason", res.Reason)
		}
		ev.Str("probe_id", id).
			Str("outcome", res.Outcome.String()).
			Dur("duration", res.Duration).
			Msg("Connectivity test finished.")

		results <- res
	}()
	return results, nil
}
