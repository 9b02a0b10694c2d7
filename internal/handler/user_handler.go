package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NazmulIslam95/matchMingle-server/internal/models"
	"github.com/NazmulIslam95/matchMingle-server/internal/service"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

// requireSelf rejects callers asking about an email other than their own.
func requireSelf(w http.ResponseWriter, r *http.Request, email string) bool {
	if EmailFromContext(r.Context()) != email {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDoc
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	users, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(users)
}

// @Summary Register a user
// @Description Registering an existing email is a no-op reported as such
// @Tags users
// @Accept json
// @Produce json
// @Param body body models.UserDoc true "user"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var u models.UserDoc
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.svc.Register(r.Context(), &u)
	if err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if res.Existing {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"insertedId": res.InsertedID})
}

// @Summary Check the admin flag for your own email
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param email path string true "email"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Router /users/admin/{email} [get]
func (h *UserHandler) GetAdminFlag(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// the segment is shared with PATCH (which takes an id), so the route
	// param is the generic "key"
	email := chi.URLParam(r, "key")
	if !requireSelf(w, r, email) {
		return
	}

	admin, err := h.svc.IsAdmin(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"admin": admin})
}

// @Summary Check the premium flag for your own email
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param email path string true "email"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Router /users/premium/{email} [get]
func (h *UserHandler) GetPremiumFlag(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	email := chi.URLParam(r, "key")
	if !requireSelf(w, r, email) {
		return
	}

	premium, err := h.svc.IsPremium(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"premium": premium})
}

// @Summary Request a premium subscription
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param email path string true "email"
// @Success 200 {object} map[string]any
// @Router /users/pending/{email} [patch]
func (h *UserHandler) MarkPending(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	modified, err := h.svc.MarkPending(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"modifiedCount": modified})
}

// @Summary Grant a premium subscription
// @Tags users
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /users/premium/{id} [patch]
func (h *UserHandler) MarkPremium(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	modified, err := h.svc.MarkPremium(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"modifiedCount": modified})
}

// @Summary Promote a user to admin
// @Tags users
// @Produce json
// @Param id path string true "document id"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Router /users/admin/{id} [patch]
func (h *UserHandler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	modified, err := h.svc.PromoteToAdmin(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"modifiedCount": modified})
}
