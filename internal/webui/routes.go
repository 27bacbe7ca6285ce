package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"incomeviz.dev/internal/app"
)

// WebUI serves the development-only debug pages.
type WebUI struct {
	*app.Application
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/debug/", http.HandlerFunc(webUI.debugIndexHandler))
}
