package api

import (
	_ "fxwatch/docs"
	"fxwatch/internal/api/handler"
	"fxwatch/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(h *handler.Handler, authMW *auth.Middleware) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/rates/{base:[A-Za-z]{3}}/latest", h.GetLatest)
		r.Post("/rates/refresh", h.RefreshAll)
		r.Post("/rates/{base:[A-Za-z]{3}}/refresh", h.RefreshBase)
		r.Get("/rates/{base:[A-Za-z]{3}}/{target:[A-Za-z]{3}}/history", h.GetHistory)
		r.Get("/rates/{base:[A-Za-z]{3}}/{target:[A-Za-z]{3}}/trend", h.GetTrend)
		r.Get("/rates/{base:[A-Za-z]{3}}/{target:[A-Za-z]{3}}/chart.png", h.GetChart)
		r.Get("/news", h.GetNews)
		r.Post("/maintenance/retention-sweep", h.RunRetentionSweep)

		// Routes below need a caller identity.
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/alerts", h.CreateAlert)
			r.Get("/alerts", h.ListAlerts)
			r.Delete("/alerts/{id}", h.DeleteAlert)
			r.Get("/watchlist", h.GetWatchlist)
			r.Put("/watchlist", h.UpdateWatchlist)
			r.Post("/watchlist/defaults", h.InitWatchlistDefaults)
		})
	})
	return router
}
