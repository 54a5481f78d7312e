package charts

import (
	"bytes"
	"testing"

	"fxwatch/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRenderPNG_NotEnoughData(t *testing.T) {
	pair := domain.Pair{Base: "USD", Target: "KES"}

	var buf bytes.Buffer
	err := RenderPNG(&buf, pair, nil)
	require.ErrorIs(t, err, ErrNotEnoughData)

	err = RenderPNG(&buf, pair, []domain.RateSample{{Rate: 129.5, Timestamp: 1_700_000_000_000}})
	require.ErrorIs(t, err, ErrNotEnoughData)
	require.Zero(t, buf.Len())
}

func TestRenderPNG_WritesPNG(t *testing.T) {
	pair := domain.Pair{Base: "USD", Target: "KES"}
	samples := []domain.RateSample{
		{Rate: 129.9, Timestamp: 1_700_000_120_000},
		{Rate: 129.6, Timestamp: 1_700_000_060_000},
		{Rate: 129.5, Timestamp: 1_700_000_000_000},
	}

	var buf bytes.Buffer
	err := RenderPNG(&buf, pair, samples)

	require.NoError(t, err)
	// PNG signature
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}))
}
