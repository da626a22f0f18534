// Package dashboard serves the read-only aggregates and the user directory
// behind the per-role dashboards.
package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"ardoise/internal/api"
	"ardoise/internal/domain"
	apperrors "ardoise/internal/errors"
	"ardoise/internal/fallback"
	"ardoise/internal/httpclient"
	"ardoise/internal/query"
)

type Service struct {
	client *httpclient.Client
	cache  *query.Cache
	logger *zap.Logger
}

func NewService(client *httpclient.Client, cache *query.Cache, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Stats is recomputed upstream on every fetch; the cache only smooths bursts
// within the staleness window.
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	key := query.Key{Resource: string(fallback.KeyStats)}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*domain.DashboardStats, error) {
			return s.client.DashboardStats(ctx)
		},
		func() (*domain.DashboardStats, error) {
			stats := fallback.Stats()
			return &stats, nil
		},
	)
}

func (s *Service) ListUsers(ctx context.Context) (*api.Page[domain.User], error) {
	key := query.Key{Resource: string(fallback.KeyUsers)}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*api.Page[domain.User], error) {
			return s.client.ListUsers(ctx)
		},
		func() (*api.Page[domain.User], error) {
			page := api.Paginate(fallback.Users(), 1, 0, "/api/users")
			return &page, nil
		},
	)
}

func (s *Service) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	key := query.Key{
		Resource: string(fallback.KeyUsers),
		Params:   map[string]string{"id": strconv.FormatUint(uint64(id), 10)},
	}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*domain.User, error) {
			return s.client.GetUser(ctx, id)
		},
		func() (*domain.User, error) {
			for _, u := range fallback.Users() {
				if u.ID == id {
					return &u, nil
				}
			}
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", id))
		},
	)
}

func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	key := query.Key{Resource: string(fallback.KeyCurrentUser)}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*domain.User, error) {
			return s.client.Me(ctx)
		},
		func() (*domain.User, error) {
			me := fallback.CurrentUser()
			return &me, nil
		},
	)
}
