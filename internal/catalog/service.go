// Package catalog exposes the article (product) and category operations the
// manager screens use.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

func (s *Service) ListProducts(ctx context.Context) (*api.Page[domain.Product], error) {
	key := query.Key{Resource: string(fallback.KeyProducts)}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*api.Page[domain.Product], error) {
			return s.client.ListProducts(ctx)
		},
		func() (*api.Page[domain.Product], error) {
			page := api.Paginate(fallback.Products(), 1, 0, "/api/products")
			return &page, nil
		},
	)
}

func (s *Service) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	key := query.Key{
		Resource: string(fallback.KeyProducts),
		Params:   map[string]string{"id": strconv.FormatUint(uint64(id), 10)},
	}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*domain.Product, error) {
			return s.client.GetProduct(ctx, id)
		},
		func() (*domain.Product, error) {
			for _, p := range fallback.Products() {
				if p.ID == id {
					return &p, nil
				}
			}
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
		},
	)
}

func (s *Service) CreateProduct(ctx context.Context, req api.CreateProductRequest) (*domain.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.cache.Offline() {
		product := simulateCreate(req)
		s.cache.Invalidate(string(fallback.KeyProducts))
		return product, nil
	}

	var created *domain.Product
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		product, err := s.client.CreateProduct(ctx, req)
		if err != nil {
			return err
		}
		created = product
		return nil
	}, string(fallback.KeyProducts))
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created", zap.Uint("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id uint, req api.UpdateProductRequest) (*domain.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.cache.Offline() {
		product, err := s.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		applyUpdate(product, req)
		s.cache.Invalidate(string(fallback.KeyProducts))
		return product, nil
	}

	var updated *domain.Product
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		product, err := s.client.UpdateProduct(ctx, id, req)
		if err != nil {
			return err
		}
		updated = product
		return nil
	}, string(fallback.KeyProducts))
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uint) error {
	if s.cache.Offline() {
		if _, err := s.GetProduct(ctx, id); err != nil {
			return err
		}
		s.cache.Invalidate(string(fallback.KeyProducts))
		return nil
	}

	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.client.DeleteProduct(ctx, id)
	}, string(fallback.KeyProducts))
}

func (s *Service) ListCategories(ctx context.Context) (*api.Page[domain.Category], error) {
	key := query.Key{Resource: string(fallback.KeyCategories)}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*api.Page[domain.Category], error) {
			return s.client.ListCategories(ctx)
		},
		func() (*api.Page[domain.Category], error) {
			page := api.Paginate(fallback.Categories(), 1, 0, "/api/categories")
			return &page, nil
		},
	)
}

func (s *Service) GetCategory(ctx context.Context, id uint) (*domain.Category, error) {
	key := query.Key{
		Resource: string(fallback.KeyCategories),
		Params:   map[string]string{"id": strconv.FormatUint(uint64(id), 10)},
	}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*domain.Category, error) {
			return s.client.GetCategory(ctx, id)
		},
		func() (*domain.Category, error) {
			for _, c := range fallback.Categories() {
				if c.ID == id {
					return &c, nil
				}
			}
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("category %d not found", id))
		},
	)
}

func simulateCreate(req api.CreateProductRequest) *domain.Product {
	var maxID uint
	for _, p := range fallback.Products() {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	now := time.Now().UTC()
	return &domain.Product{
		ID:          maxID + 1,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func applyUpdate(product *domain.Product, req api.UpdateProductRequest) {
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.Available != nil {
		product.Available = *req.Available
	}
	product.UpdatedAt = time.Now().UTC()
}
