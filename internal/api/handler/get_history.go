package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

type HistoricalRateResponse struct {
	Rate      float64 `json:"rate" example:"129.53"`
	Timestamp int64   `json:"timestamp" example:"1735822800000"`
}

// GetHistory godoc
// @Summary Get historical rates for a pair
// @Description Retained samples for the pair inside the window, newest first
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency code"
// @Param target path string true "Target currency code"
// @Param hours query int false "Window size in hours (default 24)"
// @Success 200 {array} HistoricalRateResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/{base}/{target}/history [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	pair, err := h.pairFromURL(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	hours := 0
	if raw := r.URL.Query().Get("hours"); raw != "" {
		hours, err = strconv.Atoi(raw)
		if err != nil || hours < 0 {
			writeError(w, http.StatusBadRequest, "invalid hours parameter")
			return
		}
	}

	samples, err := h.history.GetHistoricalRates(r.Context(), pair, hours)
	if err != nil {
		msg := "ups, couldn't get historical rates this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetHistory", "pair": pair.String()}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]HistoricalRateResponse, 0, len(samples))
	for _, sample := range samples {
		res = append(res, HistoricalRateResponse{Rate: sample.Rate, Timestamp: sample.Timestamp})
	}
	writeJSON(w, http.StatusOK, res)
}
