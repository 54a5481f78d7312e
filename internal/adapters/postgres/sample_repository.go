package postgres

import (
	"context"
	"errors"
	"fmt"
	"fxwatch/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SampleRepository struct {
	pool *pgxpool.Pool
}

func (r *SampleRepository) Insert(ctx context.Context, sample domain.RateSample) (int64, error) {
	const q = `
        insert into historical_rates(base_currency, target_currency, rate, ts)
        values ($1, $2, $3, $4)
        returning id;
    `

	var id int64
	if err := r.pool.QueryRow(ctx, q,
		sample.Pair.Base,
		sample.Pair.Target,
		sample.Rate,
		sample.Timestamp,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert sample for %q: %w", sample.Pair, err)
	}
	return id, nil
}

func (r *SampleRepository) Latest(ctx context.Context, pair domain.Pair) (*domain.RateSample, error) {
	const q = `
        select id, base_currency, target_currency, rate, ts
        from historical_rates
        where base_currency = $1 and target_currency = $2
        order by ts desc
        limit 1;
    `

	var sample domain.RateSample
	if err := r.pool.QueryRow(ctx, q, pair.Base, pair.Target).Scan(
		&sample.ID,
		&sample.Pair.Base,
		&sample.Pair.Target,
		&sample.Rate,
		&sample.Timestamp,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select latest sample for %q: %w", pair, err)
	}
	return &sample, nil
}

func (r *SampleRepository) Window(ctx context.Context, pair domain.Pair, fromTS int64) ([]domain.RateSample, error) {
	const q = `
        select id, base_currency, target_currency, rate, ts
        from historical_rates
        where base_currency = $1 and target_currency = $2 and ts >= $3
        order by ts desc;
    `

	rows, err := r.pool.Query(ctx, q, pair.Base, pair.Target, fromTS)
	if err != nil {
		return nil, fmt.Errorf("failed to query window for %q: %w", pair, err)
	}
	defer rows.Close()

	return scanSamples(rows)
}

func (r *SampleRepository) StaleIDs(ctx context.Context, pair domain.Pair, cutoffTS int64) ([]int64, error) {
	const q = `
        select id from historical_rates
        where base_currency = $1 and target_currency = $2 and ts < $3;
    `

	rows, err := r.pool.Query(ctx, q, pair.Base, pair.Target, cutoffTS)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale ids for %q: %w", pair, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 64)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan stale id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stale ids: %w", err)
	}
	return ids, nil
}

func (r *SampleRepository) StaleSamples(ctx context.Context, cutoffTS int64) ([]domain.RateSample, error) {
	const q = `
        select id, base_currency, target_currency, rate, ts
        from historical_rates
        where ts < $1;
    `

	rows, err := r.pool.Query(ctx, q, cutoffTS)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale samples: %w", err)
	}
	defer rows.Close()

	return scanSamples(rows)
}

func (r *SampleRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `delete from historical_rates where id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete sample %d: %w", id, err)
	}
	return nil
}

func scanSamples(rows pgx.Rows) ([]domain.RateSample, error) {
	samples := make([]domain.RateSample, 0, 64)
	for rows.Next() {
		var s domain.RateSample
		if err := rows.Scan(&s.ID, &s.Pair.Base, &s.Pair.Target, &s.Rate, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating samples: %w", err)
	}
	return samples, nil
}

func NewSampleRepository(pool *pgxpool.Pool) *SampleRepository {
	return &SampleRepository{pool: pool}
}
