package handlers

import "net/http"

// Register mounts the study API on mux. Every route expects the user
// attached by middleware.SyncUser.
func (h *StudyHandler) Register(mux *http.ServeMux) {
	// User
	mux.HandleFunc("GET /api/me", h.GetCurrentUser)

	// Categories
	mux.HandleFunc("GET /api/categories", h.GetCategories)
	mux.HandleFunc("POST /api/categories", h.CreateCategory)
	mux.HandleFunc("DELETE /api/categories/{name}", h.DeleteCategory)
	mux.HandleFunc("GET /api/categories/{name}/stats", h.GetCategoryStats)
	mux.HandleFunc("GET /api/categories/{name}/flashcards", h.GetCategoryFlashcards)
	mux.HandleFunc("POST /api/categories/{name}/import", h.ImportFlashcards)
	mux.HandleFunc("POST /api/categories/{name}/generate", h.GenerateFlashcards)

	// Flashcards
	mux.HandleFunc("POST /api/flashcards", h.CreateFlashcard)
	mux.HandleFunc("PUT /api/flashcards/{id}", h.UpdateFlashcard)
	mux.HandleFunc("DELETE /api/flashcards/{id}", h.DeleteFlashcard)
	mux.HandleFunc("POST /api/flashcards/{id}/ratings", h.RateFlashcard)

	// Progress
	mux.HandleFunc("GET /api/progress", h.GetProgress)

	// Settings
	mux.HandleFunc("GET /api/settings/ai", h.GetAISettings)
	mux.HandleFunc("PUT /api/settings/ai", h.UpdateAISettings)

	// Snapshots
	mux.HandleFunc("GET /api/snapshots", h.StreamSnapshots)
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
