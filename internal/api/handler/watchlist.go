package handler

import (
	"encoding/json"
	"fxwatch/internal/auth"
	"fxwatch/internal/domain"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type WatchedPairPayload struct {
	ID     string `json:"id" example:"USD-KES"`
	Base   string `json:"base" example:"USD"`
	Target string `json:"target" example:"KES"`
	Order  int    `json:"order" example:"0"`
}

func toWatchlistResponse(pairs []domain.WatchedPair) []WatchedPairPayload {
	res := make([]WatchedPairPayload, 0, len(pairs))
	for _, wp := range pairs {
		res = append(res, WatchedPairPayload{
			ID:     wp.ID,
			Base:   wp.Pair.Base,
			Target: wp.Pair.Target,
			Order:  wp.Order,
		})
	}
	return res
}

// GetWatchlist godoc
// @Summary List the caller's watched pairs
// @Tags Watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WatchedPairPayload
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /watchlist [get]
func (h *Handler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	pairs, err := h.watchlist.List(r.Context(), userID)
	if err != nil {
		msg := "ups, couldn't load watchlist this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetWatchlist", "user": userID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, toWatchlistResponse(pairs))
}

// InitWatchlistDefaults godoc
// @Summary Seed the default watched pairs for a new user
// @Tags Watchlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} WatchedPairPayload
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /watchlist/defaults [post]
func (h *Handler) InitWatchlistDefaults(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	pairs, err := h.watchlist.InitDefaults(r.Context(), userID)
	if err != nil {
		msg := "ups, couldn't seed watchlist this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "InitWatchlistDefaults", "user": userID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, toWatchlistResponse(pairs))
}

// UpdateWatchlist godoc
// @Summary Replace the caller's watched pairs
// @Tags Watchlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []WatchedPairPayload true "Watched pairs in display order"
// @Success 200 {array} WatchedPairPayload
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /watchlist [put]
func (h *Handler) UpdateWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserID(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req []WatchedPairPayload
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pairs := make([]domain.WatchedPair, 0, len(req))
	for _, payload := range req {
		base := strings.ToUpper(strings.TrimSpace(payload.Base))
		target := strings.ToUpper(strings.TrimSpace(payload.Target))
		if err = h.validator.ValidateCodes(base, target); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		id := payload.ID
		if id == "" {
			id = base + "-" + target
		}
		pairs = append(pairs, domain.WatchedPair{
			ID:    id,
			Pair:  domain.Pair{Base: base, Target: target},
			Order: payload.Order,
		})
	}

	if err = h.watchlist.Update(r.Context(), userID, pairs); err != nil {
		msg := "ups, couldn't update watchlist this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "UpdateWatchlist", "user": userID}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}
	writeJSON(w, http.StatusOK, toWatchlistResponse(pairs))
}
