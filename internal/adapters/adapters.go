package adapters

import (
	"context"
	"fxwatch/internal/domain"

	"github.com/google/uuid"
)

type QuoteClient interface {
	GetExchangeRates(ctx context.Context, base string) (map[string]float64, error)
}

type NewsClient interface {
	FetchHeadlines(ctx context.Context, country string) ([]domain.NewsItem, error)
}

type NewsCache interface {
	Get(country string) ([]domain.NewsItem, bool)
	Set(country string, items []domain.NewsItem)
}

type SnapshotRepository interface {
	Insert(ctx context.Context, snapshot domain.RateSnapshot) (int64, error)
	Latest(ctx context.Context, base string) (*domain.RateSnapshot, error)
}

type SampleRepository interface {
	Insert(ctx context.Context, sample domain.RateSample) (int64, error)
	// Latest returns the most recently persisted sample for the pair,
	// or (nil, nil) when the pair has no samples yet.
	Latest(ctx context.Context, pair domain.Pair) (*domain.RateSample, error)
	// Window returns samples with ts >= fromTS ordered by descending timestamp.
	Window(ctx context.Context, pair domain.Pair, fromTS int64) ([]domain.RateSample, error)
	StaleIDs(ctx context.Context, pair domain.Pair, cutoffTS int64) ([]int64, error)
	// StaleSamples scans stale rows across all pairs for the system-wide sweep.
	StaleSamples(ctx context.Context, cutoffTS int64) ([]domain.RateSample, error)
	DeleteByID(ctx context.Context, id int64) error
}

type AlertRepository interface {
	Insert(ctx context.Context, alert domain.Alert) error
	ListByUser(ctx context.Context, userID string) ([]domain.Alert, error)
	// ListArmed returns alerts matching the base currency with
	// is_active = true and triggered = false.
	ListArmed(ctx context.Context, base string) ([]domain.Alert, error)
	MarkTriggered(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type WatchlistRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.WatchedPair, error)
	Replace(ctx context.Context, userID string, pairs []domain.WatchedPair) error
	DistinctBases(ctx context.Context) ([]string, error)
}
