package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

type TrendResponse struct {
	CurrentRate   *float64 `json:"current_rate,omitempty" example:"129.53"`
	PreviousRate  *float64 `json:"previous_rate,omitempty" example:"129.41"`
	Change        float64  `json:"change" example:"0.12"`
	ChangePercent float64  `json:"change_percent" example:"0.0927"`
	Trend         string   `json:"trend" example:"up"`
	High24h       *float64 `json:"high_24h,omitempty" example:"129.88"`
	Low24h        *float64 `json:"low_24h,omitempty" example:"129.02"`
}

// GetTrend godoc
// @Summary Get trend data for a pair
// @Description Current/previous rate, change, 24h high/low and direction
// @Tags Rates
// @Produce json
// @Param base path string true "Base currency code"
// @Param target path string true "Target currency code"
// @Success 200 {object} TrendResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/{base}/{target}/trend [get]
func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	pair, err := h.pairFromURL(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trend, err := h.history.GetTrendData(r.Context(), pair)
	if err != nil {
		msg := "ups, couldn't get trend data this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetTrend", "pair": pair.String()}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := TrendResponse{
		CurrentRate:   trend.CurrentRate,
		PreviousRate:  trend.PreviousRate,
		Change:        trend.Change,
		ChangePercent: trend.ChangePercent,
		Trend:         string(trend.Trend),
		High24h:       trend.High24h,
		Low24h:        trend.Low24h,
	}
	writeJSON(w, http.StatusOK, res)
}
