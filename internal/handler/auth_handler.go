package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NazmulIslam95/matchMingle-server/internal/service"
)

type AuthHandler struct {
	tokens *service.TokenService
}

func NewAuthHandler(tokens *service.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// @Summary Issue an access token
// @Description Signs the posted claims (email required) into a 1h bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body map[string]any true "claims"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var claims map[string]any
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.tokens.Issue(claims)
	if err != nil {
		if errors.Is(err, service.ErrEmailRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
}
