package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractParam(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "Plain household type",
			value: "전체가구",
			want:  "전체가구",
		},
		{
			name:  "With JSON extension",
			value: "1인가구.json",
			want:  "1인가구",
		},
		{
			name:  "With space",
			value: "3인가구 이상",
			want:  "3인가구 이상",
		},
		{
			name:  "Dots inside the value",
			value: "a.b.json",
			want:  "a.b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := httprouter.New()

			var result string
			router.Handler(http.MethodGet, "/api/households/:type", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				result = ExtractParam(r, "type")
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/households/"+url.PathEscape(tc.value), nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tc.want, result)
		})
	}
}
