package charts

import (
	"errors"
	"fxwatch/internal/domain"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

var ErrNotEnoughData = errors.New("not enough samples to render a chart")

// RenderPNG draws the pair's sample series as a PNG line chart.
// Samples arrive newest first (the store's read order) and are plotted
// oldest to newest.
func RenderPNG(w io.Writer, pair domain.Pair, samples []domain.RateSample) error {
	if len(samples) < 2 {
		return ErrNotEnoughData
	}

	xs := make([]time.Time, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	for i := len(samples) - 1; i >= 0; i-- {
		xs = append(xs, time.UnixMilli(samples[i].Timestamp))
		ys = append(ys, samples[i].Rate)
	}

	graph := chart.Chart{
		Title:  pair.String(),
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("15:04"),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    pair.String(),
				XValues: xs,
				YValues: ys,
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
