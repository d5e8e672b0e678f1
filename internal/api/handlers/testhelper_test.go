package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fitflowhq/fitflow/internal/api"
	"github.com/fitflowhq/fitflow/internal/blog"
	"github.com/fitflowhq/fitflow/internal/config"
)

// newTestServer builds a router over a freshly seeded in-memory store. No
// persister is attached; durable-state behavior is covered by the storage
// package tests.
func newTestServer(t *testing.T) (http.Handler, *blog.Store) {
	t.Helper()

	store := blog.New(blog.Options{})
	if err := store.Seed(context.Background()); err != nil {
		t.Fatalf("seeding store: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Blog:   config.BlogConfig{PostsPerPage: 6},
		Site: config.SiteConfig{
			Title:   "FitFlow",
			BaseURL: "https://fitflow.example.com",
		},
	}

	return api.NewRouter(store, cfg), store
}

// doRequest performs a request against the handler and returns the recorded
// response.
func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeJSON unmarshals the response body into dest, failing the test on
// malformed JSON.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decoding response body %q: %v", rec.Body.String(), err)
	}
}
