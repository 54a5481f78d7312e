package news

import (
	"context"
	"fxwatch/internal/adapters"
	"fxwatch/internal/domain"

	"github.com/sirupsen/logrus"
)

type Service struct {
	client adapters.NewsClient
	cache  adapters.NewsCache
}

// Headlines returns business headlines for the country, serving from
// the short-TTL cache when warm. Provider failure degrades to an empty
// feed rather than an error: news is an optional panel, not core state.
func (s *Service) Headlines(ctx context.Context, country string) ([]domain.NewsItem, error) {
	if items, ok := s.cache.Get(country); ok {
		return items, nil
	}

	items, err := s.client.FetchHeadlines(ctx, country)
	if err != nil {
		logrus.WithError(err).Warnf("News fetch for '%s' failed, returning empty feed", country)
		return []domain.NewsItem{}, nil
	}

	s.cache.Set(country, items)
	return items, nil
}

func NewService(client adapters.NewsClient, cache adapters.NewsCache) *Service {
	return &Service{client: client, cache: cache}
}
