package postgres

import (
	"context"
	"fmt"
	"fxwatch/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepository struct {
	pool *pgxpool.Pool
}

func (r *AlertRepository) Insert(ctx context.Context, alert domain.Alert) error {
	const q = `
        insert into alerts(id, user_id, base_currency, target_currency, target_rate, condition, is_active, triggered)
        values ($1, $2, $3, $4, $5, $6, $7, $8);
    `

	if _, err := r.pool.Exec(ctx, q,
		alert.ID,
		alert.UserID,
		alert.Pair.Base,
		alert.Pair.Target,
		alert.TargetRate,
		string(alert.Condition),
		alert.IsActive,
		alert.Triggered,
	); err != nil {
		return fmt.Errorf("failed to insert alert for %q: %w", alert.Pair, err)
	}
	return nil
}

func (r *AlertRepository) ListByUser(ctx context.Context, userID string) ([]domain.Alert, error) {
	const q = `
        select id, user_id, base_currency, target_currency, target_rate, condition, is_active, triggered
        from alerts
        where user_id = $1;
    `

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func (r *AlertRepository) ListArmed(ctx context.Context, base string) ([]domain.Alert, error) {
	const q = `
        select id, user_id, base_currency, target_currency, target_rate, condition, is_active, triggered
        from alerts
        where base_currency = $1 and is_active and not triggered;
    `

	rows, err := r.pool.Query(ctx, q, base)
	if err != nil {
		return nil, fmt.Errorf("failed to query armed alerts for %q: %w", base, err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func (r *AlertRepository) MarkTriggered(ctx context.Context, id uuid.UUID) error {
	// One-way latch: triggered never goes back to false.
	if _, err := r.pool.Exec(ctx, `update alerts set triggered = true where id = $1;`, id); err != nil {
		return fmt.Errorf("failed to mark alert %q triggered: %w", id, err)
	}
	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	// Ownership is part of the predicate so a foreign id looks exactly
	// like a missing one.
	tag, err := r.pool.Exec(ctx, `delete from alerts where id = $1 and user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete alert %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlertNotFound
	}
	return nil
}

func scanAlerts(rows pgx.Rows) ([]domain.Alert, error) {
	alerts := make([]domain.Alert, 0, 16)
	for rows.Next() {
		var a domain.Alert
		var condition string
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Pair.Base,
			&a.Pair.Target,
			&a.TargetRate,
			&condition,
			&a.IsActive,
			&a.Triggered,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		a.Condition = domain.AlertCondition(condition)
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}
	return alerts, nil
}

func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}
