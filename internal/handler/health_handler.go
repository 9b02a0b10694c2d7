package handler

import "net/http"

// @Summary Liveness banner
// @Tags health
// @Success 200
// @Router / [get]
func Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("MatchMingle Is Running"))
}
