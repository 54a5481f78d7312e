package handler

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type NewsItemResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	URL         string `json:"url"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source"`
}

// GetNews godoc
// @Summary Get business headlines for a country
// @Tags News
// @Produce json
// @Param country query string false "Country code (default US)"
// @Success 200 {array} NewsItemResponse
// @Failure 500 {object} errorResponse
// @Router /news [get]
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	country := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("country")))
	if country == "" {
		country = "US"
	}

	items, err := h.news.Headlines(r.Context(), country)
	if err != nil {
		msg := "ups, couldn't load news this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetNews", "country": country}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]NewsItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, NewsItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Summary:     item.Summary,
			URL:         item.URL,
			PublishedAt: item.PublishedAt,
			Source:      item.Source,
		})
	}
	writeJSON(w, http.StatusOK, res)
}
