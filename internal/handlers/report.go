package handlers

import (
	"net/http"
	"time"

	"github.com/wallycup/stats-engine/internal/models"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint. The server is ready once a report document exists.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Current()
	ready := err == nil

	status := http.StatusOK
	body := map[string]interface{}{"ready": ready}
	if ready {
		body["updated_at"] = report.UpdatedAt
	} else {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, body)
}

// current loads the report or writes a 503 and returns nil.
func (h *Handler) current(w http.ResponseWriter) *models.Report {
	report, err := h.reports.Current()
	if err != nil {
		h.logger.Errorw("Report unavailable", "error", err)
		h.errorResponse(w, http.StatusServiceUnavailable, "Report not generated yet")
		return nil
	}
	return report
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	if report := h.current(w); report != nil {
		h.jsonResponse(w, http.StatusOK, report)
	}
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	if report := h.current(w); report != nil {
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"standings": report.Standings,
			"history":   report.StandingsHistory,
		})
	}
}

func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	if report := h.current(w); report != nil {
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"players": report.Players,
		})
	}
}

func (h *Handler) GetHotPlayers(w http.ResponseWriter, r *http.Request) {
	if report := h.current(w); report != nil {
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"hot_players": report.HotPlayers,
		})
	}
}

func (h *Handler) GetColdPlayers(w http.ResponseWriter, r *http.Request) {
	if report := h.current(w); report != nil {
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"cold_players": report.ColdPlayers,
		})
	}
}

func (h *Handler) GetMilestones(w http.ResponseWriter, r *http.Request) {
	if report := h.current(w); report != nil {
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"milestones": report.Milestones,
		})
	}
}

func (h *Handler) GetRecaps(w http.ResponseWriter, r *http.Request) {
	if report := h.current(w); report != nil {
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"daily_recaps": report.DailyRecaps,
		})
	}
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	if report := h.current(w); report != nil {
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{
			"schedule":       report.Schedule,
			"country_status": report.CountryStatus,
		})
	}
}
