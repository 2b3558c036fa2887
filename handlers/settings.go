package handlers

import "net/http"

func (h *StudyHandler) GetAISettings(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	settings, err := h.Service.GetAISettings(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

func (h *StudyHandler) UpdateAISettings(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req struct {
		APIKey string `json:"apiKey" validate:"max=512"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	settings, err := h.Service.SaveAPIKey(r.Context(), user.ID, req.APIKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}
