package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studysnap-api/service"
)

type flashcardRequest struct {
	Front    string `json:"front" validate:"required,max=1000"`
	Back     string `json:"back" validate:"required,max=2000"`
	Category string `json:"category" validate:"max=100"`
}

func (req flashcardRequest) input() service.CardInput {
	return service.CardInput{Front: req.Front, Back: req.Back, Category: req.Category}
}

func (h *StudyHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req flashcardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	flashcard, err := h.Service.AddFlashcard(r.Context(), user.ID, req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, flashcard)
}

func (h *StudyHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req flashcardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	flashcard, err := h.Service.UpdateFlashcard(r.Context(), user.ID, r.PathValue("id"), req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, flashcard)
}

func (h *StudyHandler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteFlashcard(r.Context(), user.ID, r.PathValue("id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StudyHandler) RateFlashcard(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req struct {
		Rating int `json:"rating"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	progress, err := h.Service.RateFlashcard(r.Context(), user.ID, r.PathValue("id"), req.Rating)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, progress)
}

func (h *StudyHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	progress, err := h.Service.ListProgress(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, progress)
}
