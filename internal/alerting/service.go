package alerting

import (
	"context"
	"fmt"
	"fxwatch/internal/adapters"
	"fxwatch/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Service struct {
	repo adapters.AlertRepository
}

func (s *Service) Create(ctx context.Context, userID string, pair domain.Pair, targetRate float64, condition domain.AlertCondition) (domain.Alert, error) {
	alert := domain.Alert{
		ID:         uuid.New(),
		UserID:     userID,
		Pair:       pair,
		TargetRate: targetRate,
		Condition:  condition,
		IsActive:   true,
		Triggered:  false,
	}
	if err := s.repo.Insert(ctx, alert); err != nil {
		return domain.Alert{}, err
	}
	return alert, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.Alert, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes the alert iff it belongs to the caller. A foreign or
// unknown id surfaces as domain.ErrAlertNotFound.
func (s *Service) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

// Evaluate flips the triggered latch on every armed alert for the base
// currency whose threshold is met by the fetched rate table. Boundaries
// are inclusive: hitting the target exactly counts. An alert whose
// target currency is absent from the snapshot is skipped silently —
// transient provider gaps must not corrupt alert state.
func (s *Service) Evaluate(ctx context.Context, base string, rates map[string]float64) error {
	armed, err := s.repo.ListArmed(ctx, base)
	if err != nil {
		return fmt.Errorf("failed to load armed alerts for %q: %w", base, err)
	}

	for _, alert := range armed {
		currentRate, ok := rates[alert.Pair.Target]
		if !ok {
			continue
		}

		fired := false
		switch alert.Condition {
		case domain.ConditionAbove:
			fired = currentRate >= alert.TargetRate
		case domain.ConditionBelow:
			fired = currentRate <= alert.TargetRate
		}
		if !fired {
			continue
		}

		if err = s.repo.MarkTriggered(ctx, alert.ID); err != nil {
			return fmt.Errorf("failed to trigger alert %q: %w", alert.ID, err)
		}
		logrus.WithFields(logrus.Fields{
			"alert": alert.ID,
			"pair":  alert.Pair.String(),
			"rate":  currentRate,
		}).Info("Alert triggered")
	}
	return nil
}

func NewService(repo adapters.AlertRepository) *Service {
	return &Service{repo: repo}
}
