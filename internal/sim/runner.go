package sim

import (
	"context"
	"sync"
	"time"

	"github.com/san-kum/cfdsteps/internal/scheme"
)

// Run advances s by its fixed dt n times, stopping early when ctx is done.
// Fields are checked for NaN or Inf once at the end.
func Run(ctx context.Context, s *Step, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s.Advance(s.dt)
	}
	if !s.finite() {
		return &StepError{Kind: s.kind, Step: s.steps, Wrapped: ErrUnstable}
	}
	return nil
}

// BenchResult is the timing of one scheme's headless run.
type BenchResult struct {
	Kind     scheme.Kind
	Advances int
	Elapsed  time.Duration
	Err      error
}

// Rate returns advances per second.
func (r BenchResult) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Advances) / r.Elapsed.Seconds()
}

// Bench runs each kind on its own fresh Step concurrently. Results come back
// in the order of kinds.
func Bench(ctx context.Context, kinds []scheme.Kind, advances int) []BenchResult {
	results := make([]BenchResult, len(kinds))

	var wg sync.WaitGroup
	for i, k := range kinds {
		wg.Add(1)
		go func(idx int, k scheme.Kind) {
			defer wg.Done()

			res := BenchResult{Kind: k}
			s, err := New(k)
			if err != nil {
				res.Err = err
				results[idx] = res
				return
			}
			start := time.Now()
			res.Err = Run(ctx, s, advances)
			res.Elapsed = time.Since(start)
			res.Advances = s.Steps()
			results[idx] = res
		}(i, k)
	}

	wg.Wait()
	return results
}
