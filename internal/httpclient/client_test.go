package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ardoise/internal/api"
	"ardoise/internal/auth"
	"ardoise/internal/config"
	"ardoise/internal/domain"
	apperrors "ardoise/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *auth.MemStore) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := auth.NewMemStore()
	client := New(config.APIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}, tokens, zap.NewNop())
	return client, tokens
}

func TestClient_SendsJSONHeaders(t *testing.T) {
	var got http.Header
	client, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		json.NewEncoder(w).Encode(api.Envelope[domain.User]{Data: domain.User{ID: 3}, Success: true})
	}))
	require.NoError(t, tokens.SetToken("tok-42"))

	_, err := client.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "Bearer tok-42", got.Get("Authorization"))
	assert.NotEmpty(t, got.Get("X-Request-Id"))
}

func TestClient_NoAuthorizationWithoutToken(t *testing.T) {
	var got http.Header
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		json.NewEncoder(w).Encode(api.Envelope[domain.User]{Success: true})
	}))

	_, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_NonSuccessStatusIsHTTPError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(api.ErrorResponse{Error: "VALIDATION_ERROR", Message: "items must not be empty"})
	}))

	_, err := client.GetOrder(context.Background(), 1)
	require.Error(t, err)

	he, ok := apperrors.IsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, he.StatusCode)
	assert.Equal(t, "items must not be empty", he.Message)
}

func TestClient_NetworkFailureIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	client := New(config.APIConfig{BaseURL: srv.URL, Timeout: time.Second}, auth.NewMemStore(), zap.NewNop())

	_, err := client.DashboardStats(context.Background())
	require.Error(t, err)

	_, ok := apperrors.IsTransportError(err)
	assert.True(t, ok)
	_, ok = apperrors.IsHTTPError(err)
	assert.False(t, ok)
}

func TestClient_DecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/7", r.URL.Path)
		json.NewEncoder(w).Encode(api.Envelope[domain.Order]{
			Data:    domain.Order{ID: 7, OrderNumber: "C007", Status: domain.StatusPending, TotalPrice: 1200},
			Success: true,
		})
	}))

	order, err := client.GetOrder(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "C007", order.OrderNumber)
	assert.Equal(t, int64(1200), order.TotalPrice)
}

func TestClient_ListOrdersEncodesFilters(t *testing.T) {
	var query string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode(api.Page[domain.Order]{Data: []domain.Order{}})
	}))

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.ListOrders(context.Background(), domain.OrderFilters{
		Status:   domain.StatusPending,
		DateFrom: &from,
		Search:   "C00",
		Page:     2,
		PerPage:  10,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "status=pending")
	assert.Contains(t, query, "date_from=2025-06-01")
	assert.Contains(t, query, "search=C00")
	assert.Contains(t, query, "page=2")
	assert.Contains(t, query, "per_page=10")
}

func TestClient_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.Me(ctx)
	require.Error(t, err)
	_, ok := apperrors.IsTransportError(err)
	assert.True(t, ok)
}
