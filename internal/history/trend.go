package history

import "fxwatch/internal/domain"

// trendDeadband absorbs floating-point noise from upstream quote jitter:
// a change within it reports stable.
const trendDeadband = 0.0001

// ComputeTrend derives read-time statistics from the current snapshot
// value and the 24h sample window, which must be ordered by descending
// timestamp. Pure function, safe to evaluate on every read.
func ComputeTrend(currentRate *float64, window []domain.RateSample) domain.TrendData {
	if len(window) == 0 {
		return domain.TrendData{
			CurrentRate: currentRate,
			Trend:       domain.TrendStable,
			High24h:     currentRate,
			Low24h:      currentRate,
		}
	}

	previous := window[0].Rate

	var change float64
	if currentRate != nil {
		change = *currentRate - previous
	}
	var changePercent float64
	if previous != 0 {
		changePercent = change / previous * 100
	}

	high, low := window[0].Rate, window[0].Rate
	for _, sample := range window[1:] {
		high = max(high, sample.Rate)
		low = min(low, sample.Rate)
	}
	if currentRate != nil {
		high = max(high, *currentRate)
		low = min(low, *currentRate)
	}

	trend := domain.TrendStable
	switch {
	case change > trendDeadband:
		trend = domain.TrendUp
	case change < -trendDeadband:
		trend = domain.TrendDown
	}

	return domain.TrendData{
		CurrentRate:   currentRate,
		PreviousRate:  &previous,
		Change:        change,
		ChangePercent: changePercent,
		Trend:         trend,
		High24h:       &high,
		Low24h:        &low,
	}
}
