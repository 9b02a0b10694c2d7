package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"
	"github.com/NazmulIslam95/matchMingle-server/internal/service"

	"github.com/go-chi/chi/v5"
)

type BiodataHandler struct {
	svc *service.BiodataService
}

func NewBiodataHandler(s *service.BiodataService) *BiodataHandler {
	return &BiodataHandler{svc: s}
}

// @Summary List all biodatas
// @Tags biodatas
// @Produce json
// @Success 200 {array} map[string]any
// @Router /biodatas [get]
func (h *BiodataHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	list, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Get a biodata by id
// @Tags biodatas
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /biodatas/{id} [get]
func (h *BiodataHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doc, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// a miss is an empty 200 body, matching the lenient contract
	_ = json.NewEncoder(w).Encode(doc)
}

// @Summary Get the biodata owned by an email
// @Tags biodatas
// @Security BearerAuth
// @Produce json
// @Param email path string true "owner email"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Router /biodataByEmail/{email} [get]
func (h *BiodataHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	doc, err := h.svc.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if doc == nil {
		http.Error(w, "biodata not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(doc)
}

// @Summary Create or update a biodata
// @Description Upserts by email: first submission inserts with the next biodataId, later ones update in place
// @Tags biodatas
// @Accept json
// @Produce json
// @Param body body map[string]any true "biodata"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /biodatas [post]
func (h *BiodataHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var doc models.BiodataDoc
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.Upsert(r.Context(), doc)
	if err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if res.Updated {
		_ = json.NewEncoder(w).Encode(map[string]any{"modifiedCount": res.ModifiedCount})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"insertedId": res.InsertedID,
		"biodataId":  res.BiodataID,
	})
}
