package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/andrewpaige1/studysnap-api/ai"
	"github.com/andrewpaige1/studysnap-api/cardtext"
	"github.com/andrewpaige1/studysnap-api/extract"
	"github.com/andrewpaige1/studysnap-api/logger"
	"github.com/andrewpaige1/studysnap-api/mastery"
	"github.com/andrewpaige1/studysnap-api/middleware"
	"github.com/andrewpaige1/studysnap-api/models"
	"github.com/andrewpaige1/studysnap-api/service"
	"github.com/andrewpaige1/studysnap-api/store"
	"github.com/andrewpaige1/studysnap-api/utils"
)

const maxJSONBody = 1 << 20

var errBadRequest = errors.New("bad request")

type StudyHandler struct {
	Service *service.Service
	Log     *logger.Logger
}

func NewStudyHandler(svc *service.Service, log *logger.Logger) *StudyHandler {
	return &StudyHandler{Service: svc, Log: log.With("component", "http")}
}

func (h *StudyHandler) currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}

// decodeJSON reads a JSON body into v and validates it.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("%w: could not decode request: %v", errBadRequest, err)
	}
	if err := utils.ValidateStruct(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func (h *StudyHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	if err := utils.WriteJSON(w, status, v); err != nil {
		h.Log.Warn("failed to write response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	_ = utils.WriteJSON(w, status, map[string]string{"error": msg})
}

// writeError maps every error the service can return onto a status code.
// Server-side failures are logged and answered with a generic message.
func (h *StudyHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *ai.APIError
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, mastery.ErrInvalidRating),
		errors.Is(err, ai.ErrMissingAPIKey),
		errors.Is(err, ai.ErrEmptyContent),
		errors.Is(err, extract.ErrUnsupportedType),
		errors.Is(err, extract.ErrUnreadablePDF):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrUnknownCategory):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrCategoryExists):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, cardtext.ErrNoFlashcards):
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &apiErr):
		h.Log.Error("AI request failed", "path", r.URL.Path, "status", apiErr.StatusCode, "error", err)
		writeJSONError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, ai.ErrTransport):
		h.Log.Error("AI request failed", "path", r.URL.Path, "error", err)
		writeJSONError(w, http.StatusBadGateway, ai.ErrTransport.Error())
	case errors.Is(err, ai.ErrBadResponse):
		h.Log.Error("AI request failed", "path", r.URL.Path, "error", err)
		writeJSONError(w, http.StatusBadGateway, ai.ErrBadResponse.Error())
	case r.Context().Err() != nil:
		h.Log.Debug("request cancelled", "path", r.URL.Path, "error", err)
	default:
		h.Log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
