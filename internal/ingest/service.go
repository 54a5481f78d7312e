package ingest

import (
	"context"
	"fmt"
	"fxwatch/internal/adapters"
	"fxwatch/internal/domain"
	"time"

	"github.com/sirupsen/logrus"
)

// SampleRecorder is the sampling decision engine consulted per target.
type SampleRecorder interface {
	RecordSample(ctx context.Context, pair domain.Pair, rate float64, now time.Time) (bool, error)
}

// AlertEvaluator consumes the fetched rate table after it is persisted.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, base string, rates map[string]float64) error
}

type Service struct {
	quotes    adapters.QuoteClient
	snapshots adapters.SnapshotRepository
	recorder  SampleRecorder
	alerts    AlertEvaluator
	watchlist adapters.WatchlistRepository
}

// RefreshBase runs one ingest cycle for a base currency: fetch the full
// quote table, append it as a snapshot, consult the sampling decision
// engine per target, then evaluate alerts against the same table.
// A failing target fails alone; the rest of the table still lands.
func (s *Service) RefreshBase(ctx context.Context, base string) error {
	rates, err := s.quotes.GetExchangeRates(ctx, base)
	if err != nil {
		return fmt.Errorf("quote fetch for %q failed: %w", base, err)
	}

	now := time.Now()
	snapshot := domain.RateSnapshot{BaseCurrency: base, Rates: rates, Timestamp: now.UnixMilli()}
	if _, err = s.snapshots.Insert(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to store snapshot for %q: %w", base, err)
	}

	retained := 0
	for target, rate := range rates {
		pair := domain.Pair{Base: base, Target: target}
		stored, recErr := s.recorder.RecordSample(ctx, pair, rate, now)
		if recErr != nil {
			logrus.WithError(recErr).Warnf("Sample for '%s' wasn't recorded, siblings continue", pair)
			continue
		}
		if stored {
			retained++
		}
	}
	logrus.Infof("Ingest for %s: %d targets fetched, %d samples retained", base, len(rates), retained)

	if err = s.alerts.Evaluate(ctx, base, rates); err != nil {
		return fmt.Errorf("alert evaluation for %q failed: %w", base, err)
	}
	return nil
}

func NewService(
	quotes adapters.QuoteClient,
	snapshots adapters.SnapshotRepository,
	recorder SampleRecorder,
	alerts AlertEvaluator,
	watchlist adapters.WatchlistRepository,
) *Service {
	return &Service{
		quotes:    quotes,
		snapshots: snapshots,
		recorder:  recorder,
		alerts:    alerts,
		watchlist: watchlist,
	}
}
