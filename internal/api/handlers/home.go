package handlers

import "net/http"

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	encode(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "Picture Management API"})
}
