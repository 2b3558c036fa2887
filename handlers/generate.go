package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/andrewpaige1/studysnap-api/extract"
)

const maxUpload = 10 << 20

type textRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *StudyHandler) ImportFlashcards(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req textRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	cards, err := h.Service.ImportText(r.Context(), user.ID, r.PathValue("name"), req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, cards)
}

// GenerateFlashcards accepts either a JSON {"text": ...} body or a
// multipart upload with the study material in the "file" field.
func (h *StudyHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	text, err := h.materialText(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	cards, err := h.Service.GenerateFlashcards(r.Context(), user.ID, r.PathValue("name"), text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, cards)
}

func (h *StudyHandler) materialText(w http.ResponseWriter, r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var req struct {
			Text string `json:"text"`
		}
		if err := decodeJSON(w, r, &req); err != nil {
			return "", err
		}
		return req.Text, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("%w: missing file upload: %v", errBadRequest, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("%w: could not read upload: %v", errBadRequest, err)
	}
	return extract.Text(header.Filename, header.Header.Get("Content-Type"), data)
}
