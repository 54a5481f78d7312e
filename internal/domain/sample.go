package domain

// RateSample is one retained observation of a pair's rate.
// Timestamps are unix milliseconds. Samples are never mutated once
// written; the pruner deletes them when they age out.
type RateSample struct {
	ID        int64
	Pair      Pair
	Rate      float64
	Timestamp int64
}

// RateSnapshot is the full quote table for one base currency at one
// fetch instant. Snapshots are append-only; the latest is the newest
// by timestamp, not an overwrite.
type RateSnapshot struct {
	ID           int64
	BaseCurrency string
	Rates        map[string]float64
	Timestamp    int64
}
