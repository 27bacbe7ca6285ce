package restapi

import (
	"net/http"

	"incomeviz.dev/internal/models"
)

// healthHandler reports the dataset state without forcing a load.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := models.NewHealthModel(api.Dataset.Stats())

	code := http.StatusOK
	if health.LastError != "" && !health.Loaded {
		code = http.StatusServiceUnavailable
	}
	api.sendResponse(w, r, models.NewResponse(code, health, http.StatusText(code)))
}
