package handler

import (
	"context"
	"encoding/json"
	"fxwatch/internal/domain"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Validator interface {
	ValidateCodes(base, target string) error
	ValidateBase(base string) error
	SupportedCodes() []string
}

type HistoryService interface {
	GetHistoricalRates(ctx context.Context, pair domain.Pair, hours int) ([]domain.RateSample, error)
	GetTrendData(ctx context.Context, pair domain.Pair) (domain.TrendData, error)
	LatestSnapshot(ctx context.Context, base string) (*domain.RateSnapshot, error)
	SweepAll(ctx context.Context, now time.Time) error
}

type IngestService interface {
	RefreshBase(ctx context.Context, base string) error
	RefreshAll(ctx context.Context, execID string) error
}

type AlertService interface {
	Create(ctx context.Context, userID string, pair domain.Pair, targetRate float64, condition domain.AlertCondition) (domain.Alert, error)
	List(ctx context.Context, userID string) ([]domain.Alert, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type WatchlistService interface {
	List(ctx context.Context, userID string) ([]domain.WatchedPair, error)
	InitDefaults(ctx context.Context, userID string) ([]domain.WatchedPair, error)
	Update(ctx context.Context, userID string, pairs []domain.WatchedPair) error
}

type NewsService interface {
	Headlines(ctx context.Context, country string) ([]domain.NewsItem, error)
}

type Handler struct {
	validator Validator
	history   HistoryService
	ingest    IngestService
	alerts    AlertService
	watchlist WatchlistService
	news      NewsService
}

func NewHandler(
	validator Validator,
	history HistoryService,
	ingest IngestService,
	alerts AlertService,
	watchlist WatchlistService,
	news NewsService,
) *Handler {
	return &Handler{
		validator: validator,
		history:   history,
		ingest:    ingest,
		alerts:    alerts,
		watchlist: watchlist,
		news:      news,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
