package handler

import (
	"encoding/json"
	"net/http"

	"github.com/NazmulIslam95/matchMingle-server/internal/service"
)

type AdminHandler struct {
	svc *service.StatsService
}

func NewAdminHandler(s *service.StatsService) *AdminHandler {
	return &AdminHandler{svc: s}
}

// @Summary Site counters for the admin dashboard
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.SiteStats
// @Failure 403 {object} map[string]string
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(stats)
}
