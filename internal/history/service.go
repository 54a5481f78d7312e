package history

import (
	"context"
	"errors"
	"fmt"
	"fxwatch/internal/adapters"
	"fxwatch/internal/domain"
	"time"
)

const defaultWindowHours = 24

type Service struct {
	samples   adapters.SampleRepository
	snapshots adapters.SnapshotRepository
}

// GetHistoricalRates returns the pair's retained samples inside the
// window, newest first. A non-positive window falls back to 24 hours.
func (s *Service) GetHistoricalRates(ctx context.Context, pair domain.Pair, hours int) ([]domain.RateSample, error) {
	if hours <= 0 {
		hours = defaultWindowHours
	}
	from := time.Now().Add(-time.Duration(hours) * time.Hour).UnixMilli()
	return s.samples.Window(ctx, pair, from)
}

// GetTrendData computes derived statistics for the pair. Missing
// snapshot or empty history degrade to undefined fields, not errors.
func (s *Service) GetTrendData(ctx context.Context, pair domain.Pair) (domain.TrendData, error) {
	var currentRate *float64

	snapshot, err := s.snapshots.Latest(ctx, pair.Base)
	switch {
	case err == nil:
		if rate, ok := snapshot.Rates[pair.Target]; ok {
			currentRate = &rate
		}
	case errors.Is(err, domain.ErrSnapshotNotFound):
		// no snapshot yet, trend is computed from history alone
	default:
		return domain.TrendData{}, fmt.Errorf("failed to load snapshot for %q: %w", pair.Base, err)
	}

	from := time.Now().Add(-defaultWindowHours * time.Hour).UnixMilli()
	window, err := s.samples.Window(ctx, pair, from)
	if err != nil {
		return domain.TrendData{}, fmt.Errorf("failed to load window for %q: %w", pair, err)
	}

	return ComputeTrend(currentRate, window), nil
}

// LatestSnapshot returns the newest full quote table for the base.
func (s *Service) LatestSnapshot(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	return s.snapshots.Latest(ctx, base)
}

func NewService(samples adapters.SampleRepository, snapshots adapters.SnapshotRepository) *Service {
	return &Service{samples: samples, snapshots: snapshots}
}
