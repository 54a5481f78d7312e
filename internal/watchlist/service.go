package watchlist

import (
	"context"
	"fmt"
	"fxwatch/internal/adapters"
	"fxwatch/internal/domain"
)

// defaultPairs are the major currencies quoted against KES that a new
// user starts with.
var defaultPairs = []domain.WatchedPair{
	{ID: "USD-KES", Pair: domain.Pair{Base: "USD", Target: "KES"}, Order: 0},
	{ID: "EUR-KES", Pair: domain.Pair{Base: "EUR", Target: "KES"}, Order: 1},
	{ID: "GBP-KES", Pair: domain.Pair{Base: "GBP", Target: "KES"}, Order: 2},
	{ID: "JPY-KES", Pair: domain.Pair{Base: "JPY", Target: "KES"}, Order: 3},
	{ID: "AUD-KES", Pair: domain.Pair{Base: "AUD", Target: "KES"}, Order: 4},
	{ID: "CAD-KES", Pair: domain.Pair{Base: "CAD", Target: "KES"}, Order: 5},
	{ID: "CHF-KES", Pair: domain.Pair{Base: "CHF", Target: "KES"}, Order: 6},
	{ID: "CNY-KES", Pair: domain.Pair{Base: "CNY", Target: "KES"}, Order: 7},
}

type Service struct {
	repo adapters.WatchlistRepository
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.WatchedPair, error) {
	return s.repo.ListByUser(ctx, userID)
}

// InitDefaults seeds the default pair list for a user that has none.
// A user with an existing watchlist keeps it untouched.
func (s *Service) InitDefaults(ctx context.Context, userID string) ([]domain.WatchedPair, error) {
	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	seeded := make([]domain.WatchedPair, 0, len(defaultPairs))
	for _, wp := range defaultPairs {
		wp.UserID = userID
		seeded = append(seeded, wp)
	}
	if err = s.repo.Replace(ctx, userID, seeded); err != nil {
		return nil, fmt.Errorf("failed to seed default pairs: %w", err)
	}
	return seeded, nil
}

// Update replaces the user's watchlist with the given entries.
func (s *Service) Update(ctx context.Context, userID string, pairs []domain.WatchedPair) error {
	for i := range pairs {
		pairs[i].UserID = userID
	}
	return s.repo.Replace(ctx, userID, pairs)
}

func NewService(repo adapters.WatchlistRepository) *Service {
	return &Service{repo: repo}
}
