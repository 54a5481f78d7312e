package postgres

import (
	"context"
	"fmt"
	"fxwatch/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WatchlistRepository struct {
	pool *pgxpool.Pool
}

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string) ([]domain.WatchedPair, error) {
	const q = `
        select id, user_id, base_currency, target_currency, display_order
        from watched_pairs
        where user_id = $1
        order by display_order;
    `

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watched pairs: %w", err)
	}
	defer rows.Close()

	pairs := make([]domain.WatchedPair, 0, 8)
	for rows.Next() {
		var wp domain.WatchedPair
		if err = rows.Scan(&wp.ID, &wp.UserID, &wp.Pair.Base, &wp.Pair.Target, &wp.Order); err != nil {
			return nil, fmt.Errorf("failed to scan watched pair: %w", err)
		}
		pairs = append(pairs, wp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating watched pairs: %w", err)
	}
	return pairs, nil
}

// Replace swaps the user's whole watchlist in one transaction so a
// partial write can never leave a mixed ordering behind.
func (r *WatchlistRepository) Replace(ctx context.Context, userID string, pairs []domain.WatchedPair) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `delete from watched_pairs where user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to clear watched pairs: %w", err)
	}

	const q = `
        insert into watched_pairs(id, user_id, base_currency, target_currency, display_order)
        values ($1, $2, $3, $4, $5);
    `
	for _, wp := range pairs {
		if _, err = tx.Exec(ctx, q, wp.ID, userID, wp.Pair.Base, wp.Pair.Target, wp.Order); err != nil {
			return fmt.Errorf("failed to insert watched pair %q: %w", wp.ID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *WatchlistRepository) DistinctBases(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `select distinct base_currency from watched_pairs;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct bases: %w", err)
	}
	defer rows.Close()

	bases := make([]string, 0, 8)
	for rows.Next() {
		var base string
		if err = rows.Scan(&base); err != nil {
			return nil, fmt.Errorf("failed to scan base currency: %w", err)
		}
		bases = append(bases, base)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bases: %w", err)
	}
	return bases, nil
}

func NewWatchlistRepository(pool *pgxpool.Pool) *WatchlistRepository {
	return &WatchlistRepository{pool: pool}
}
