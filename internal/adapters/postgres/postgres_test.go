package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"fxwatch/internal/adapters/postgres"
	"fxwatch/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	// currencies keeps its migration seed; everything else starts empty.
	if _, err := pool.Exec(ctx, `truncate table rate_snapshots, historical_rates, alerts, watched_pairs restart identity`); err != nil {
		return err
	}
	return nil
}

// ---------- SampleRepository tests ----------

func TestSampleRepository_Latest_NoneYet(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSampleRepository(pool)

	sample, err := repo.Latest(context.Background(), domain.Pair{Base: "USD", Target: "KES"})
	require.NoError(t, err)
	require.Nil(t, sample)
}

func TestSampleRepository_InsertAndLatest(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSampleRepository(pool)
	ctx := context.Background()

	pair := domain.Pair{Base: "USD", Target: "KES"}

	id1, err := repo.Insert(ctx, domain.RateSample{Pair: pair, Rate: 129.5, Timestamp: 1000})
	require.NoError(t, err)
	require.Positive(t, id1)

	id2, err := repo.Insert(ctx, domain.RateSample{Pair: pair, Rate: 129.9, Timestamp: 2000})
	require.NoError(t, err)
	require.Greater(t, id2, id1)

	latest, err := repo.Latest(ctx, pair)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, id2, latest.ID)
	require.Equal(t, pair, latest.Pair)
	require.InDelta(t, 129.9, latest.Rate, 1e-9)
	require.Equal(t, int64(2000), latest.Timestamp)
}

func TestSampleRepository_Latest_IgnoresOtherPairs(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSampleRepository(pool)
	ctx := context.Background()

	usdKes := domain.Pair{Base: "USD", Target: "KES"}
	eurKes := domain.Pair{Base: "EUR", Target: "KES"}

	_, err := repo.Insert(ctx, domain.RateSample{Pair: usdKes, Rate: 129.5, Timestamp: 1000})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.RateSample{Pair: eurKes, Rate: 141.2, Timestamp: 9000})
	require.NoError(t, err)

	latest, err := repo.Latest(ctx, usdKes)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, usdKes, latest.Pair)
	require.Equal(t, int64(1000), latest.Timestamp)
}

func TestSampleRepository_Window_InclusiveLowerBoundNewestFirst(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSampleRepository(pool)
	ctx := context.Background()

	pair := domain.Pair{Base: "USD", Target: "KES"}
	for _, s := range []domain.RateSample{
		{Pair: pair, Rate: 129.1, Timestamp: 999},  // just outside
		{Pair: pair, Rate: 129.2, Timestamp: 1000}, // exactly on the boundary
		{Pair: pair, Rate: 129.3, Timestamp: 1500},
		{Pair: pair, Rate: 129.4, Timestamp: 2000},
	} {
		_, err := repo.Insert(ctx, s)
		require.NoError(t, err)
	}

	window, err := repo.Window(ctx, pair, 1000)
	require.NoError(t, err)
	require.Len(t, window, 3)
	require.Equal(t, int64(2000), window[0].Timestamp)
	require.Equal(t, int64(1500), window[1].Timestamp)
	require.Equal(t, int64(1000), window[2].Timestamp)
}

func TestSampleRepository_StaleIDs_StrictCutoff(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSampleRepository(pool)
	ctx := context.Background()

	pair := domain.Pair{Base: "USD", Target: "KES"}
	oldID, err := repo.Insert(ctx, domain.RateSample{Pair: pair, Rate: 129.1, Timestamp: 500})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.RateSample{Pair: pair, Rate: 129.2, Timestamp: 1000}) // on the cutoff, kept
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.RateSample{Pair: pair, Rate: 129.3, Timestamp: 1500})
	require.NoError(t, err)

	ids, err := repo.StaleIDs(ctx, pair, 1000)
	require.NoError(t, err)
	require.Equal(t, []int64{oldID}, ids)
}

func TestSampleRepository_StaleSamples_AcrossPairs(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSampleRepository(pool)
	ctx := context.Background()

	usdKes := domain.Pair{Base: "USD", Target: "KES"}
	eurKes := domain.Pair{Base: "EUR", Target: "KES"}

	_, err := repo.Insert(ctx, domain.RateSample{Pair: usdKes, Rate: 129.1, Timestamp: 100})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.RateSample{Pair: eurKes, Rate: 141.1, Timestamp: 200})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.RateSample{Pair: usdKes, Rate: 129.9, Timestamp: 5000})
	require.NoError(t, err)

	stale, err := repo.StaleSamples(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, stale, 2)
	pairs := []domain.Pair{stale[0].Pair, stale[1].Pair}
	require.ElementsMatch(t, []domain.Pair{usdKes, eurKes}, pairs)
}

func TestSampleRepository_DeleteByID_Idempotent(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSampleRepository(pool)
	ctx := context.Background()

	pair := domain.Pair{Base: "USD", Target: "KES"}
	id, err := repo.Insert(ctx, domain.RateSample{Pair: pair, Rate: 129.5, Timestamp: 1000})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, id))
	// Deleting a row that is already gone is not an error.
	require.NoError(t, repo.DeleteByID(ctx, id))

	latest, err := repo.Latest(ctx, pair)
	require.NoError(t, err)
	require.Nil(t, latest)
}

// ---------- SnapshotRepository tests ----------

func TestSnapshotRepository_Latest_NotFound(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)

	_, err := repo.Latest(context.Background(), "USD")
	require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotRepository_InsertAndLatest(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewSnapshotRepository(pool)
	ctx := context.Background()

	_, err := repo.Insert(ctx, domain.RateSnapshot{
		BaseCurrency: "USD",
		Rates:        map[string]float64{"KES": 129.5, "EUR": 0.92},
		Timestamp:    1000,
	})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.RateSnapshot{
		BaseCurrency: "USD",
		Rates:        map[string]float64{"KES": 129.9, "EUR": 0.93},
		Timestamp:    2000,
	})
	require.NoError(t, err)

	latest, err := repo.Latest(ctx, "USD")
	require.NoError(t, err)
	require.Equal(t, "USD", latest.BaseCurrency)
	require.Equal(t, int64(2000), latest.Timestamp)
	require.InDelta(t, 129.9, latest.Rates["KES"], 1e-9)
	require.InDelta(t, 0.93, latest.Rates["EUR"], 1e-9)
}

// ---------- AlertRepository tests ----------

func insertAlert(t *testing.T, repo *postgres.AlertRepository, userID string, triggered, active bool) domain.Alert {
	t.Helper()
	alert := domain.Alert{
		ID:         uuid.New(),
		UserID:     userID,
		Pair:       domain.Pair{Base: "USD", Target: "KES"},
		TargetRate: 130,
		Condition:  domain.ConditionAbove,
		IsActive:   active,
		Triggered:  triggered,
	}
	require.NoError(t, repo.Insert(context.Background(), alert))
	return alert
}

func TestAlertRepository_InsertAndListByUser(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewAlertRepository(pool)
	ctx := context.Background()

	mine := insertAlert(t, repo, "user-1", false, true)
	insertAlert(t, repo, "user-2", false, true)

	alerts, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, mine.ID, alerts[0].ID)
	require.Equal(t, mine.Pair, alerts[0].Pair)
	require.Equal(t, domain.ConditionAbove, alerts[0].Condition)
}

func TestAlertRepository_ListArmed_FiltersTriggeredAndInactive(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewAlertRepository(pool)
	ctx := context.Background()

	armed := insertAlert(t, repo, "user-1", false, true)
	insertAlert(t, repo, "user-1", true, true)  // already fired
	insertAlert(t, repo, "user-1", false, false) // disabled

	got, err := repo.ListArmed(ctx, "USD")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, armed.ID, got[0].ID)
}

func TestAlertRepository_MarkTriggered_Latches(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewAlertRepository(pool)
	ctx := context.Background()

	alert := insertAlert(t, repo, "user-1", false, true)

	require.NoError(t, repo.MarkTriggered(ctx, alert.ID))

	armed, err := repo.ListArmed(ctx, "USD")
	require.NoError(t, err)
	require.Empty(t, armed)

	// Still listed for the user, now with the latch set.
	alerts, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.True(t, alerts[0].Triggered)
}

func TestAlertRepository_Delete_OwnershipEnforced(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewAlertRepository(pool)
	ctx := context.Background()

	alert := insertAlert(t, repo, "user-1", false, true)

	// Someone else's id looks exactly like a missing one.
	err := repo.Delete(ctx, "user-2", alert.ID)
	require.ErrorIs(t, err, domain.ErrAlertNotFound)

	require.NoError(t, repo.Delete(ctx, "user-1", alert.ID))

	err = repo.Delete(ctx, "user-1", alert.ID)
	require.ErrorIs(t, err, domain.ErrAlertNotFound)
}

// ---------- WatchlistRepository tests ----------

func TestWatchlistRepository_ReplaceAndListByUser(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewWatchlistRepository(pool)
	ctx := context.Background()

	pairs := []domain.WatchedPair{
		{ID: "EUR-KES", UserID: "user-1", Pair: domain.Pair{Base: "EUR", Target: "KES"}, Order: 1},
		{ID: "USD-KES", UserID: "user-1", Pair: domain.Pair{Base: "USD", Target: "KES"}, Order: 0},
	}
	require.NoError(t, repo.Replace(ctx, "user-1", pairs))

	got, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by display order, not insertion order.
	require.Equal(t, "USD-KES", got[0].ID)
	require.Equal(t, "EUR-KES", got[1].ID)
}

func TestWatchlistRepository_Replace_SwapsWholeList(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewWatchlistRepository(pool)
	ctx := context.Background()

	first := []domain.WatchedPair{
		{ID: "USD-KES", UserID: "user-1", Pair: domain.Pair{Base: "USD", Target: "KES"}, Order: 0},
		{ID: "EUR-KES", UserID: "user-1", Pair: domain.Pair{Base: "EUR", Target: "KES"}, Order: 1},
	}
	require.NoError(t, repo.Replace(ctx, "user-1", first))

	second := []domain.WatchedPair{
		{ID: "GBP-KES", UserID: "user-1", Pair: domain.Pair{Base: "GBP", Target: "KES"}, Order: 0},
	}
	require.NoError(t, repo.Replace(ctx, "user-1", second))

	got, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "GBP-KES", got[0].ID)
}

func TestWatchlistRepository_Replace_LeavesOtherUsersAlone(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewWatchlistRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, "user-1", []domain.WatchedPair{
		{ID: "USD-KES", UserID: "user-1", Pair: domain.Pair{Base: "USD", Target: "KES"}, Order: 0},
	}))
	require.NoError(t, repo.Replace(ctx, "user-2", []domain.WatchedPair{
		{ID: "EUR-KES", UserID: "user-2", Pair: domain.Pair{Base: "EUR", Target: "KES"}, Order: 0},
	}))

	require.NoError(t, repo.Replace(ctx, "user-1", nil))

	mine, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, mine)

	theirs, err := repo.ListByUser(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, theirs, 1)
}

func TestWatchlistRepository_DistinctBases(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewWatchlistRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, "user-1", []domain.WatchedPair{
		{ID: "USD-KES", UserID: "user-1", Pair: domain.Pair{Base: "USD", Target: "KES"}, Order: 0},
		{ID: "EUR-KES", UserID: "user-1", Pair: domain.Pair{Base: "EUR", Target: "KES"}, Order: 1},
	}))
	require.NoError(t, repo.Replace(ctx, "user-2", []domain.WatchedPair{
		{ID: "USD-NGN", UserID: "user-2", Pair: domain.Pair{Base: "USD", Target: "NGN"}, Order: 0},
	}))

	bases, err := repo.DistinctBases(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"USD", "EUR"}, bases)
}
