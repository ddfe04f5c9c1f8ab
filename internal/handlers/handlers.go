// Package handlers serves the report document over HTTP. Every endpoint is
// a read-only view into the most recent pipeline run.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wallycup/stats-engine/internal/models"
)

// ReportProvider supplies the current report document.
type ReportProvider interface {
	Current() (*models.Report, error)
}

type Config struct {
	Reports        ReportProvider
	AllowedOrigins []string
	Logger         *zap.Logger
}

type Handler struct {
	reports ReportProvider
	origins []string
	logger  *zap.SugaredLogger
}

func New(cfg Config) *Handler {
	return &Handler{
		reports: cfg.Reports,
		origins: cfg.AllowedOrigins,
		logger:  cfg.Logger.Sugar(),
	}
}

// Router assembles the full route tree.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(h.requestMetrics)

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/report", h.GetReport)
		r.Get("/standings", h.GetStandings)
		r.Get("/players", h.GetPlayers)
		r.Get("/players/hot", h.GetHotPlayers)
		r.Get("/players/cold", h.GetColdPlayers)
		r.Get("/milestones", h.GetMilestones)
		r.Get("/recaps", h.GetRecaps)
		r.Get("/schedule", h.GetSchedule)
	})

	return r
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
