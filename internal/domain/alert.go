package domain

import "github.com/google/uuid"

type AlertCondition string

const (
	ConditionAbove AlertCondition = "above"
	ConditionBelow AlertCondition = "below"
)

func (c AlertCondition) Valid() bool {
	return c == ConditionAbove || c == ConditionBelow
}

// Alert is a user-defined threshold watch. Triggered is a one-way
// latch: once set it is never reset, deactivating and reactivating an
// alert does not re-arm it.
type Alert struct {
	ID         uuid.UUID
	UserID     string
	Pair       Pair
	TargetRate float64
	Condition  AlertCondition
	IsActive   bool
	Triggered  bool
}

// WatchedPair is one entry of a user's subscribed pair list.
// Order only drives display ordering.
type WatchedPair struct {
	ID     string
	UserID string
	Pair   Pair
	Order  int
}
