package restapi

import (
	"time"

	"incomeviz.dev/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter.
// A configured rate limit of zero turns limiting off.
func NewRestAPI(app *app.Application) *RestAPI {
	perSecond := app.Config.RateLimit
	if perSecond == 0 {
		perSecond = -1
	}
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(perSecond, time.Second),
	}
}

// Shutdown stops background work owned by the API.
func (api *RestAPI) Shutdown() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
