package app

import "net/http"

// APIKeysEnabled reports whether requests must carry a ?key= parameter.
func (app *Application) APIKeysEnabled() bool {
	return len(app.Config.ApiKeys) > 0
}

func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	if !app.APIKeysEnabled() {
		return false
	}
	key := r.URL.Query().Get("key")
	return app.IsInvalidAPIKey(key)
}

func (app *Application) IsInvalidAPIKey(key string) bool {
	if key == "" {
		return true
	}

	for _, validKey := range app.Config.ApiKeys {
		if key == validKey {
			return false
		}
	}

	return true
}
