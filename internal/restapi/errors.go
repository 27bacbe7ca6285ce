package restapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"incomeviz.dev/internal/income"
	"incomeviz.dev/internal/logging"
	"incomeviz.dev/internal/models"
)

type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

func (api *RestAPI) writeError(w http.ResponseWriter, code int, text string) {
	response := errorResponse{
		Code:        code,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode error response", "error", err, "status", code)
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("path", r.URL.Path),
		slog.String("request_id", RequestIDFromContext(r.Context())))
	api.writeError(w, http.StatusInternalServerError, "internal server error")
}

// loadErrorResponse answers 503 when the dataset could not be loaded. The
// error kind leads the text so clients can tell a missing file from a bad one.
func (api *RestAPI) loadErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var loadErr *income.LoadError
	if !errors.As(err, &loadErr) {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("%s: %s", loadErr.Kind, loadErr.Message))
}

// datasetErrorResponse routes a failure from the dataset manager.
func (api *RestAPI) datasetErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		api.writeError(w, http.StatusServiceUnavailable, "request cancelled")
		return
	}
	api.loadErrorResponse(w, r, err)
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}
