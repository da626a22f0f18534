package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ardoise/internal/domain"
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

func TestService_Stats(t *testing.T) {
	svc := newOnlineService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, int64(6230), stats.TotalRevenue)
	assert.Equal(t, 1, stats.StatusCounts[domain.StatusPending])
}

func TestService_Stats_Offline(t *testing.T) {
	client := testutil.NewClient(t, "http://127.0.0.1:1")
	cache := query.NewCache(time.Minute, true, zap.NewNop())
	svc := NewService(client, cache, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 12.5, stats.OrdersGrowth)
}

func TestService_UsersAndMe(t *testing.T) {
	svc := newOnlineService(t)
	ctx := context.Background()

	page, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)

	user, err := svc.GetUser(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCuisinier, user.Role)

	me, err := svc.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleServeur, me.Role)
}
