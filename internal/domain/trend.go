package domain

type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// TrendData holds read-time statistics derived from the latest snapshot
// and the 24h sample window. Pointer fields are nil when the underlying
// value is unknown (no snapshot, empty window).
type TrendData struct {
	CurrentRate   *float64
	PreviousRate  *float64
	Change        float64
	ChangePercent float64
	Trend         TrendDirection
	High24h       *float64
	Low24h        *float64
}
