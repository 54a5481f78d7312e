package history

import (
	"context"
	"fmt"
	"fxwatch/internal/domain"
	"time"
)

// Retention tiers, coarsest first. Each tier names the spacing at which
// samples of that granularity are retained. Because every coarser
// spacing implies the minute floor, the acceptance test collapses to
// "at least one minute since the last retained sample" — the ladder is
// kept because the retention policy is documented in its terms.
var retentionTiers = []struct {
	name    string
	spacing time.Duration
}{
	{"day", 24 * time.Hour},
	{"sixHours", 6 * time.Hour},
	{"hour", time.Hour},
	{"fiveMinutes", 5 * time.Minute},
	{"minute", time.Minute},
}

// shouldRetain reports whether a candidate observed elapsed after the
// last retained sample clears any tier spacing. A candidate is only
// ever rejected for being too frequent, never for being too coarse.
func shouldRetain(elapsed time.Duration) bool {
	for _, tier := range retentionTiers {
		if elapsed >= tier.spacing {
			return true
		}
	}
	return false
}

// RecordSample decides whether the candidate rate becomes a retained
// sample. The last-sample state is re-read from the store on every call
// rather than cached, so the decision survives restarts and never acts
// on a stale cursor. On acceptance the pair is pruned synchronously.
func (s *Service) RecordSample(ctx context.Context, pair domain.Pair, rate float64, now time.Time) (bool, error) {
	last, err := s.samples.Latest(ctx, pair)
	if err != nil {
		return false, fmt.Errorf("failed to read last sample for %q: %w", pair, err)
	}

	if last != nil {
		elapsed := time.Duration(now.UnixMilli()-last.Timestamp) * time.Millisecond
		if !shouldRetain(elapsed) {
			return false, nil
		}
	}

	sample := domain.RateSample{Pair: pair, Rate: rate, Timestamp: now.UnixMilli()}
	if _, err = s.samples.Insert(ctx, sample); err != nil {
		return false, fmt.Errorf("failed to insert sample for %q: %w", pair, err)
	}

	if err = s.PrunePair(ctx, pair, now); err != nil {
		// The sample is already stored; pruning will catch up on the
		// next acceptance or the nightly sweep.
		return true, fmt.Errorf("prune after insert for %q: %w", pair, err)
	}
	return true, nil
}
