package history

import (
	"context"
	"fmt"
	"fxwatch/internal/domain"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// retentionHorizon is the single enforced cutoff. Combined with the
	// minute sampling floor it bounds a pair's series to
	// 90d * 86400s / 60s = 129600 samples regardless of fetch frequency.
	retentionHorizon = 90 * 24 * time.Hour

	pairDeleteBatch  = 100
	sweepDeleteBatch = 50
)

// PrunePair removes the pair's samples older than the retention horizon.
// Invoked synchronously after every accepted sample.
func (s *Service) PrunePair(ctx context.Context, pair domain.Pair, now time.Time) error {
	cutoff := now.Add(-retentionHorizon).UnixMilli()

	ids, err := s.samples.StaleIDs(ctx, pair, cutoff)
	if err != nil {
		return fmt.Errorf("failed to collect stale samples for %q: %w", pair, err)
	}
	if len(ids) == 0 {
		return nil
	}

	if err = s.deleteInBatches(ctx, ids, pairDeleteBatch); err != nil {
		return fmt.Errorf("failed to prune %q: %w", pair, err)
	}
	logrus.Infof("Pruned %d stale samples for %s", len(ids), pair)
	return nil
}

// SweepAll applies the retention horizon across every pair in one pass.
// It exists for pairs that stopped receiving samples and therefore never
// hit the per-ingest pruner. Idempotent: a second run right after a
// first finds nothing to delete.
func (s *Service) SweepAll(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-retentionHorizon).UnixMilli()

	stale, err := s.samples.StaleSamples(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to scan stale samples: %w", err)
	}
	if len(stale) == 0 {
		logrus.Info("Retention sweep found nothing to delete")
		return nil
	}

	groups := make(map[domain.Pair][]int64)
	for _, sample := range stale {
		groups[sample.Pair] = append(groups[sample.Pair], sample.ID)
	}

	for pair, ids := range groups {
		if err = s.deleteInBatches(ctx, ids, sweepDeleteBatch); err != nil {
			return fmt.Errorf("retention sweep aborted at %q: %w", pair, err)
		}
	}
	logrus.Infof("Retention sweep deleted %d samples across %d pairs", len(stale), len(groups))
	return nil
}

// deleteInBatches removes ids in fixed-size chunks: deletes within a
// chunk run in parallel, chunks run sequentially. A failed chunk stops
// further work; chunks already processed stay deleted, which is safe
// because deletion is idempotent and order-independent.
func (s *Service) deleteInBatches(ctx context.Context, ids []int64, batchSize int) error {
	for start := 0; start < len(ids); start += batchSize {
		batch := ids[start:min(start+batchSize, len(ids))]

		errCh := make(chan error, len(batch))
		var wg sync.WaitGroup
		for _, id := range batch {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				if err := s.samples.DeleteByID(ctx, id); err != nil {
					errCh <- err
				}
			}(id)
		}
		wg.Wait()
		close(errCh)

		if err := <-errCh; err != nil {
			return fmt.Errorf("delete batch starting at %d failed: %w", start, err)
		}
	}
	return nil
}
