package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"incomeviz.dev/internal/app"
	"incomeviz.dev/internal/appconf"
	"incomeviz.dev/internal/dataset"
	"incomeviz.dev/internal/logging"
	"incomeviz.dev/internal/metrics"
	"incomeviz.dev/internal/models"
)

// createTestApiWithData builds a RestAPI over dataPath with the API key "TEST".
func createTestApiWithData(t *testing.T, dataPath string) *RestAPI {
	t.Helper()
	cfg := appconf.Defaults()
	cfg.Env = appconf.EnvFlagToEnvironment("test")
	cfg.ApiKeys = []string{"TEST"}
	cfg.DataPath = dataPath
	cfg.RateLimit = 0

	m := metrics.New()
	manager := dataset.NewManager(app.DatasetConfigFor(cfg), logging.Discard(), m)
	t.Cleanup(manager.Shutdown)

	api := NewRestAPI(&app.Application{
		Config:  cfg,
		Logger:  logging.Discard(),
		Dataset: manager,
		Metrics: m,
	})
	t.Cleanup(api.Shutdown)
	return api
}

// createTestApi creates a RestAPI over the checked-in sample file.
func createTestApi(t *testing.T) *RestAPI {
	return createTestApiWithData(t, models.GetFixturePath(t, models.SampleDataFile))
}

func testServer(t *testing.T, api *RestAPI) *httptest.Server {
	t.Helper()
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(api.Handler(router))
	t.Cleanup(server.Close)
	return server
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	server := testServer(t, api)
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}
