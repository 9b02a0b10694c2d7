package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"
	"github.com/NazmulIslam95/matchMingle-server/internal/service"

	"github.com/go-chi/chi/v5"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(s *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: s}
}

// @Summary List favorites for a user email
// @Tags favorites
// @Produce json
// @Param email query string true "user email"
// @Success 200 {array} map[string]any
// @Router /favoriteBiodatas [get]
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	list, err := h.svc.ListByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Add a favorite
// @Description At most one favorite per (name, email) pair
// @Tags favorites
// @Accept json
// @Produce json
// @Param body body map[string]any true "favorite"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /favoriteBiodatas [post]
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var doc models.FavoriteDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.svc.Add(r.Context(), doc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateFavorite),
			errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrEmailRequired):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"insertedId": id})
}

// @Summary Remove a favorite by id
// @Tags favorites
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /favoriteBiodatas/{id} [delete]
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	deleted, err := h.svc.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"deletedCount": deleted})
}
