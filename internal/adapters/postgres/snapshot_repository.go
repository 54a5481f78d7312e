package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fxwatch/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func (r *SnapshotRepository) Insert(ctx context.Context, snapshot domain.RateSnapshot) (int64, error) {
	payload, err := json.Marshal(snapshot.Rates)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal rates for %q: %w", snapshot.BaseCurrency, err)
	}

	const q = `insert into rate_snapshots(base_currency, rates, ts) values ($1, $2, $3) returning id;`

	var id int64
	if err = r.pool.QueryRow(ctx, q, snapshot.BaseCurrency, payload, snapshot.Timestamp).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert snapshot for %q: %w", snapshot.BaseCurrency, err)
	}
	return id, nil
}

func (r *SnapshotRepository) Latest(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	const q = `
        select id, base_currency, rates, ts
        from rate_snapshots
        where base_currency = $1
        order by ts desc
        limit 1;
    `

	var snapshot domain.RateSnapshot
	var payload []byte
	if err := r.pool.QueryRow(ctx, q, base).Scan(
		&snapshot.ID,
		&snapshot.BaseCurrency,
		&payload,
		&snapshot.Timestamp,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to select latest snapshot for %q: %w", base, err)
	}

	if err := json.Unmarshal(payload, &snapshot.Rates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rates for %q: %w", base, err)
	}
	return &snapshot, nil
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}
