package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"fxwatch/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockQuoteClient struct{ mock.Mock }

func (m *MockQuoteClient) GetExchangeRates(ctx context.Context, base string) (map[string]float64, error) {
	args := m.Called(ctx, base)
	rates, _ := args.Get(0).(map[string]float64)
	return rates, args.Error(1)
}

type MockSnapshotRepository struct{ mock.Mock }

func (m *MockSnapshotRepository) Insert(ctx context.Context, snapshot domain.RateSnapshot) (int64, error) {
	args := m.Called(ctx, snapshot)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *MockSnapshotRepository) Latest(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	args := m.Called(ctx, base)
	snapshot, _ := args.Get(0).(*domain.RateSnapshot)
	return snapshot, args.Error(1)
}

type MockSampleRecorder struct{ mock.Mock }

func (m *MockSampleRecorder) RecordSample(ctx context.Context, pair domain.Pair, rate float64, now time.Time) (bool, error) {
	args := m.Called(ctx, pair, rate, now)
	return args.Bool(0), args.Error(1)
}

type MockAlertEvaluator struct{ mock.Mock }

func (m *MockAlertEvaluator) Evaluate(ctx context.Context, base string, rates map[string]float64) error {
	args := m.Called(ctx, base, rates)
	return args.Error(0)
}

type MockWatchlistRepository struct{ mock.Mock }

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID string) ([]domain.WatchedPair, error) {
	args := m.Called(ctx, userID)
	pairs, _ := args.Get(0).([]domain.WatchedPair)
	return pairs, args.Error(1)
}

func (m *MockWatchlistRepository) Replace(ctx context.Context, userID string, pairs []domain.WatchedPair) error {
	args := m.Called(ctx, userID, pairs)
	return args.Error(0)
}

func (m *MockWatchlistRepository) DistinctBases(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	bases, _ := args.Get(0).([]string)
	return bases, args.Error(1)
}

func newTestService() (*Service, *MockQuoteClient, *MockSnapshotRepository, *MockSampleRecorder, *MockAlertEvaluator, *MockWatchlistRepository) {
	quotes := new(MockQuoteClient)
	snapshots := new(MockSnapshotRepository)
	recorder := new(MockSampleRecorder)
	alerts := new(MockAlertEvaluator)
	watchlist := new(MockWatchlistRepository)
	return NewService(quotes, snapshots, recorder, alerts, watchlist), quotes, snapshots, recorder, alerts, watchlist
}

// --- RefreshBase ---

func TestService_RefreshBase_Success(t *testing.T) {
	svc, quotes, snapshots, recorder, alerts, _ := newTestService()

	ctx := context.Background()
	rates := map[string]float64{"KES": 129.53, "EUR": 0.92}

	quotes.On("GetExchangeRates", mock.Anything, "USD").Return(rates, nil).Once()
	snapshots.On("Insert", mock.Anything, mock.MatchedBy(func(s domain.RateSnapshot) bool {
		return s.BaseCurrency == "USD" && len(s.Rates) == 2 && s.Timestamp > 0
	})).Return(int64(1), nil).Once()
	recorder.On("RecordSample", mock.Anything, domain.Pair{Base: "USD", Target: "KES"}, 129.53, mock.Anything).
		Return(true, nil).Once()
	recorder.On("RecordSample", mock.Anything, domain.Pair{Base: "USD", Target: "EUR"}, 0.92, mock.Anything).
		Return(false, nil).Once()
	alerts.On("Evaluate", mock.Anything, "USD", rates).Return(nil).Once()

	err := svc.RefreshBase(ctx, "USD")

	require.NoError(t, err)
	quotes.AssertExpectations(t)
	snapshots.AssertExpectations(t)
	recorder.AssertExpectations(t)
	alerts.AssertExpectations(t)
}

func TestService_RefreshBase_QuoteFetchError(t *testing.T) {
	svc, quotes, snapshots, recorder, alerts, _ := newTestService()

	wantErr := errors.New("provider unavailable")
	quotes.On("GetExchangeRates", mock.Anything, "USD").Return(map[string]float64(nil), wantErr).Once()

	err := svc.RefreshBase(context.Background(), "USD")

	require.Error(t, err)
	require.ErrorIs(t, err, wantErr)
	snapshots.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	recorder.AssertNotCalled(t, "RecordSample", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	alerts.AssertNotCalled(t, "Evaluate", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RefreshBase_SnapshotInsertError(t *testing.T) {
	svc, quotes, snapshots, recorder, _, _ := newTestService()

	rates := map[string]float64{"KES": 129.53}
	wantErr := errors.New("db temporarily unavailable")

	quotes.On("GetExchangeRates", mock.Anything, "USD").Return(rates, nil).Once()
	snapshots.On("Insert", mock.Anything, mock.Anything).Return(int64(0), wantErr).Once()

	err := svc.RefreshBase(context.Background(), "USD")

	require.Error(t, err)
	require.ErrorIs(t, err, wantErr)
	recorder.AssertNotCalled(t, "RecordSample", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RefreshBase_FailingTargetDoesNotStopSiblings(t *testing.T) {
	svc, quotes, snapshots, recorder, alerts, _ := newTestService()

	ctx := context.Background()
	rates := map[string]float64{"KES": 129.53, "EUR": 0.92, "GBP": 0.79}

	quotes.On("GetExchangeRates", mock.Anything, "USD").Return(rates, nil).Once()
	snapshots.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	recorder.On("RecordSample", mock.Anything, domain.Pair{Base: "USD", Target: "KES"}, 129.53, mock.Anything).
		Return(false, errors.New("db temporarily unavailable")).Once()
	recorder.On("RecordSample", mock.Anything, domain.Pair{Base: "USD", Target: "EUR"}, 0.92, mock.Anything).
		Return(true, nil).Once()
	recorder.On("RecordSample", mock.Anything, domain.Pair{Base: "USD", Target: "GBP"}, 0.79, mock.Anything).
		Return(true, nil).Once()
	alerts.On("Evaluate", mock.Anything, "USD", rates).Return(nil).Once()

	err := svc.RefreshBase(ctx, "USD")

	require.NoError(t, err)
	recorder.AssertExpectations(t)
	alerts.AssertExpectations(t)
}

func TestService_RefreshBase_AlertEvaluationError(t *testing.T) {
	svc, quotes, snapshots, recorder, alerts, _ := newTestService()

	rates := map[string]float64{"KES": 129.53}
	wantErr := errors.New("db temporarily unavailable")

	quotes.On("GetExchangeRates", mock.Anything, "USD").Return(rates, nil).Once()
	snapshots.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	recorder.On("RecordSample", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
	alerts.On("Evaluate", mock.Anything, "USD", rates).Return(wantErr).Once()

	err := svc.RefreshBase(context.Background(), "USD")

	require.Error(t, err)
	require.ErrorIs(t, err, wantErr)
}

// --- RefreshAll ---

func TestService_RefreshAll_FansOutOverBases(t *testing.T) {
	svc, quotes, snapshots, recorder, alerts, watchlist := newTestService()

	ctx := context.Background()
	bases := []string{"USD", "EUR", "GBP"}

	watchlist.On("DistinctBases", mock.Anything).Return(bases, nil).Once()
	for _, base := range bases {
		rates := map[string]float64{"KES": 100}
		quotes.On("GetExchangeRates", mock.Anything, base).Return(rates, nil).Once()
		snapshots.On("Insert", mock.Anything, mock.MatchedBy(func(s domain.RateSnapshot) bool {
			return s.BaseCurrency == base
		})).Return(int64(1), nil).Once()
		recorder.On("RecordSample", mock.Anything, domain.Pair{Base: base, Target: "KES"}, 100.0, mock.Anything).
			Return(true, nil).Once()
		alerts.On("Evaluate", mock.Anything, base, rates).Return(nil).Once()
	}

	err := svc.RefreshAll(ctx, "exec-1")

	require.NoError(t, err)
	watchlist.AssertExpectations(t)
	quotes.AssertExpectations(t)
	snapshots.AssertExpectations(t)
	recorder.AssertExpectations(t)
	alerts.AssertExpectations(t)
}

func TestService_RefreshAll_NoWatchedBases(t *testing.T) {
	svc, quotes, _, _, _, watchlist := newTestService()

	watchlist.On("DistinctBases", mock.Anything).Return([]string(nil), nil).Once()

	err := svc.RefreshAll(context.Background(), "exec-1")

	require.NoError(t, err)
	quotes.AssertNotCalled(t, "GetExchangeRates", mock.Anything, mock.Anything)
	watchlist.AssertExpectations(t)
}

func TestService_RefreshAll_WatchlistError(t *testing.T) {
	svc, quotes, _, _, _, watchlist := newTestService()

	wantErr := errors.New("db temporarily unavailable")
	watchlist.On("DistinctBases", mock.Anything).Return([]string(nil), wantErr).Once()

	err := svc.RefreshAll(context.Background(), "exec-1")

	require.Error(t, err)
	require.ErrorIs(t, err, wantErr)
	quotes.AssertNotCalled(t, "GetExchangeRates", mock.Anything, mock.Anything)
}

func TestService_RefreshAll_FailingBaseDoesNotStopSiblings(t *testing.T) {
	svc, quotes, snapshots, recorder, alerts, watchlist := newTestService()

	ctx := context.Background()
	bases := []string{"USD", "EUR"}

	watchlist.On("DistinctBases", mock.Anything).Return(bases, nil).Once()
	quotes.On("GetExchangeRates", mock.Anything, "USD").
		Return(map[string]float64(nil), errors.New("provider unavailable")).Once()

	eurRates := map[string]float64{"KES": 141.2}
	quotes.On("GetExchangeRates", mock.Anything, "EUR").Return(eurRates, nil).Once()
	snapshots.On("Insert", mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	recorder.On("RecordSample", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
	alerts.On("Evaluate", mock.Anything, "EUR", eurRates).Return(nil).Once()

	err := svc.RefreshAll(ctx, "exec-1")

	require.NoError(t, err)
	quotes.AssertExpectations(t)
	alerts.AssertExpectations(t)
}
