package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"ardoise/internal/auth"
	"ardoise/internal/config"
	"ardoise/internal/httpclient"
	"ardoise/internal/stub"
)

// StartStubServer runs the fixture REST server for the duration of one test.
func StartStubServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(stub.NewRouter(stub.NewStore(), zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

// NewClient builds an HTTP client pointed at the given base URL with an
// in-memory token store.
func NewClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := config.APIConfig{BaseURL: baseURL, Timeout: 2 * time.Second}
	return httpclient.New(cfg, auth.NewMemStore(), zap.NewNop())
}
