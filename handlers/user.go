package handlers

import "net/http"

// GetCurrentUser returns the account behind the request's token.
func (h *StudyHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}
