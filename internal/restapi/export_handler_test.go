package restapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestHouseholdExportHandler(t *testing.T) {
	api := createTestApi(t)
	server := testServer(t, api)

	resp, err := http.Get(server.URL + "/api/households/" + url.PathEscape("2인가구") + "/export.xlsx?key=TEST")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("2인가구")
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}
