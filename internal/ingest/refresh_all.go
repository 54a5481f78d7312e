package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const numWorkers = 5
const perRequestTimeout = 5 * time.Second

// RefreshAll runs an ingest cycle for every distinct watched base
// currency. Bases fan out over a small worker pool; each cycle is
// isolated, so one failing base never blocks its siblings.
func (s *Service) RefreshAll(ctx context.Context, execID string) error {
	bases, err := s.watchlist.DistinctBases(ctx)
	if err != nil {
		return fmt.Errorf("failed to load watched bases: %w", err)
	}

	if len(bases) == 0 {
		logrus.Infof("No watched bases to refresh this time; execID: %s", execID)
		return nil
	}

	workQueue := make(chan string, len(bases))
	for _, base := range bases {
		workQueue <- base
	}
	close(workQueue)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			s.runWorker(ctx, workerID, workQueue)
		}(i)
	}
	wg.Wait()

	logrus.Infof("Refreshed %d watched bases; execID: %s", len(bases), execID)
	return nil
}

func (s *Service) runWorker(ctx context.Context, workerID int, workQueue <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case base, ok := <-workQueue:
			if !ok {
				return
			}
			// Better to cut a slow fetch short and pick the base up on
			// the next refresh than to hold a worker hostage.
			reqCtx, cancel := context.WithTimeout(ctx, perRequestTimeout)
			if err := s.RefreshBase(reqCtx, base); err != nil {
				logrus.Warnf("Base '%s' wasn't refreshed by Worker %d: %s", base, workerID, err)
			}
			cancel()
		}
	}
}
