package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// protected applies the API key check and then the per-key rate limit.
func (api *RestAPI) protected(finalHandler handlerFunc) http.Handler {
	var next http.Handler = http.HandlerFunc(finalHandler)
	if api.rateLimiter != nil {
		next = api.rateLimiter.Handler(next)
	}
	return validateAPIKey(api, next.ServeHTTP)
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/households.json", api.protected(api.householdsHandler))
	router.Handler(http.MethodGet, "/api/households/:type", api.protected(api.householdHandler))
	router.Handler(http.MethodGet, "/api/households/:type/charts/:metric", api.protected(api.householdChartHandler))
	router.Handler(http.MethodGet, "/api/households/:type/export.xlsx", api.protected(api.householdExportHandler))
	router.Handler(http.MethodGet, "/api/health.json", http.HandlerFunc(api.healthHandler))
	router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.sendNotFound(w, r, "")
	})
}

// Handler wraps router with the middleware chain shared by every route.
func (api *RestAPI) Handler(router http.Handler) http.Handler {
	handler := CompressionMiddleware(router)
	handler = securityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger, api.Metrics)(handler)
	return RequestIDMiddleware(handler)
}
