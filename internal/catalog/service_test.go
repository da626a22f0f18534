package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ardoise/internal/api"
	apperrors "ardoise/internal/errors"
	"ardoise/internal/query"
	"ardoise/internal/testutil"
)

func newOnlineService(t *testing.T) *Service {
	t.Helper()

	srv := testutil.StartStubServer(t)
	client := testutil.NewClient(t, srv.URL)
	cache := query.NewCache(time.Minute, false, zap.NewNop())
	return NewService(client, cache, zap.NewNop())
}

func TestService_ListProducts(t *testing.T) {
	svc := newOnlineService(t)

	page, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
}

func TestService_CreateProductThenListReflectsIt(t *testing.T) {
	svc := newOnlineService(t)
	ctx := context.Background()

	_, err := svc.ListProducts(ctx)
	require.NoError(t, err)

	created, err := svc.CreateProduct(ctx, api.CreateProductRequest{
		Name:       "Moelleux au chocolat",
		Price:      720,
		CategoryID: 3,
		Available:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(6), created.ID)

	page, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, page.Total)
}

func TestService_CreateProduct_Invalid(t *testing.T) {
	svc := newOnlineService(t)

	_, err := svc.CreateProduct(context.Background(), api.CreateProductRequest{Price: 100})
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestService_UpdateAndDeleteProduct(t *testing.T) {
	svc := newOnlineService(t)
	ctx := context.Background()

	price := int64(990)
	updated, err := svc.UpdateProduct(ctx, 1, api.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(990), updated.Price)

	require.NoError(t, svc.DeleteProduct(ctx, 1))

	_, err = svc.GetProduct(ctx, 1)
	require.Error(t, err)
	he, ok := apperrors.IsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 404, he.StatusCode)
}

func TestService_Categories_Offline(t *testing.T) {
	client := testutil.NewClient(t, "http://127.0.0.1:1")
	cache := query.NewCache(time.Minute, true, zap.NewNop())
	svc := NewService(client, cache, zap.NewNop())
	ctx := context.Background()

	page, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)

	category, err := svc.GetCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Plats", category.Name)

	_, err = svc.GetCategory(ctx, 99)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
