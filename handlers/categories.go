package handlers

import (
	"net/http"
)

func (h *StudyHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	categories, err := h.Service.ListCategories(r.Context(), user.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, categories)
}

func (h *StudyHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" validate:"required,max=100"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	category, err := h.Service.AddCategory(r.Context(), user.ID, req.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, category)
}

func (h *StudyHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	removed, err := h.Service.DeleteCategory(r.Context(), user.ID, r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"deletedFlashcards": removed})
}

func (h *StudyHandler) GetCategoryStats(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	stats, err := h.Service.CategoryStats(r.Context(), user.ID, r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *StudyHandler) GetCategoryFlashcards(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	cards, err := h.Service.ListFlashcards(r.Context(), user.ID, r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cards)
}
