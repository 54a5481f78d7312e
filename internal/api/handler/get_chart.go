package handler

import (
	"errors"
	"fxwatch/internal/charts"
	"net/http"

	"github.com/sirupsen/logrus"
)

// GetChart godoc
// @Summary Render the pair's 24h series as a PNG line chart
// @Tags Rates
// @Produce png
// @Param base path string true "Base currency code"
// @Param target path string true "Target currency code"
// @Success 200 {file} binary
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/{base}/{target}/chart.png [get]
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	pair, err := h.pairFromURL(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	samples, err := h.history.GetHistoricalRates(r.Context(), pair, 0)
	if err != nil {
		msg := "ups, couldn't load chart data this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetChart", "pair": pair.String()}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err = charts.RenderPNG(w, pair, samples); err != nil {
		if errors.Is(err, charts.ErrNotEnoughData) {
			// headers not committed yet for the error body
			w.Header().Set("Content-Type", "application/json")
			writeError(w, http.StatusNotFound, "not enough samples to render a chart")
			return
		}
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetChart", "pair": pair.String()}).Error("chart render failed")
	}
}
