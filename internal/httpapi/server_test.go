package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRouter(t *testing.T) {
	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/live", http.StatusNoContent},
		{http.MethodGet, "/ready", http.StatusNoContent},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodPost, "/live", http.StatusMethodNotAllowed},
	}

	router := Router()
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.want {
			t.Fatalf("%s %s: expected status %d, got %d", tc.method, tc.path, tc.want, rec.Code)
		}
	}
}
