// Package orders binds the HTTP client, fallback provider and query cache
// into the order operations the screens call.
package orders

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
	"ardoise/internal/filter"
	"ardoise/internal/httpclient"
	"ardoise/internal/query"
)

// invalidated after every order write: the listing itself plus the aggregate
// derived from it.
var writeInvalidates = []string{string(fallback.KeyOrders), string(fallback.KeyStats)}

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

func (s *Service) List(ctx context.Context, filters domain.OrderFilters) (*api.Page[domain.Order], error) {
	key := query.Key{
		Resource: string(fallback.KeyOrders),
		Params:   filterParams(filters),
	}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*api.Page[domain.Order], error) {
			return s.client.ListOrders(ctx, filters)
		},
		func() (*api.Page[domain.Order], error) {
			matched := filter.Apply(fallback.Orders(), filters)
			page := api.Paginate(matched, filters.Page, filters.PerPage, "/api/orders")
			return &page, nil
		},
	)
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Order, error) {
	key := query.Key{
		Resource: string(fallback.KeyOrders),
		Params:   map[string]string{"id": strconv.FormatUint(uint64(id), 10)},
	}

	return query.ReadAs(ctx, s.cache, key,
		func(ctx context.Context) (*domain.Order, error) {
			return s.client.GetOrder(ctx, id)
		},
		func() (*domain.Order, error) {
			for _, o := range fallback.Orders() {
				if o.ID == id {
					return &o, nil
				}
			}
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("order %d not found", id))
		},
	)
}

func (s *Service) Create(ctx context.Context, req api.CreateOrderRequest) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.cache.Offline() {
		// The write is simulated; the static fixtures stay as they are.
		order := simulateCreate(req)
		s.cache.Invalidate(writeInvalidates...)
		return order, nil
	}

	var created *domain.Order
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		order, err := s.client.CreateOrder(ctx, req)
		if err != nil {
			return err
		}
		created = order
		return nil
	}, writeInvalidates...)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("id", created.ID),
		zap.String("order_number", created.OrderNumber),
	)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id uint, req api.UpdateOrderRequest) (*domain.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.cache.Offline() {
		order, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		applyUpdate(order, req)
		s.cache.Invalidate(writeInvalidates...)
		return order, nil
	}

	var updated *domain.Order
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		order, err := s.client.UpdateOrder(ctx, id, req)
		if err != nil {
			return err
		}
		updated = order
		return nil
	}, writeInvalidates...)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// UpdateStatus is the status-transition action the kitchen and floor screens
// use; it is an update restricted to the status field.
func (s *Service) UpdateStatus(ctx context.Context, id uint, status domain.Status) (*domain.Order, error) {
	return s.Update(ctx, id, api.UpdateOrderRequest{Status: &status})
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if s.cache.Offline() {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
		s.cache.Invalidate(writeInvalidates...)
		return nil
	}

	return s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.client.DeleteOrder(ctx, id)
	}, writeInvalidates...)
}

func simulateCreate(req api.CreateOrderRequest) *domain.Order {
	existing := fallback.Orders()
	var maxID uint
	for _, o := range existing {
		if o.ID > maxID {
			maxID = o.ID
		}
	}

	id := maxID + 1
	now := time.Now().UTC()

	items := make([]domain.OrderItem, len(req.Items))
	for i, in := range req.Items {
		items[i] = domain.NewOrderItem(in.ProductID, in.Quantity, in.UnitPrice, in.Notes)
		items[i].ID = uint(i + 1)
		items[i].OrderID = id
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}

	order := &domain.Order{
		ID:           id,
		OrderNumber:  fmt.Sprintf("C%03d", id),
		TableNumber:  req.TableNumber,
		CustomerName: req.CustomerName,
		Status:       domain.StatusPending,
		UserID:       fallback.CurrentUser().ID,
		Items:        items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.TotalPrice = order.ItemsTotal()
	return order
}

func applyUpdate(order *domain.Order, req api.UpdateOrderRequest) {
	if req.TableNumber != nil {
		order.TableNumber = *req.TableNumber
	}
	if req.CustomerName != nil {
		order.CustomerName = req.CustomerName
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	order.UpdatedAt = time.Now().UTC()
}

func filterParams(f domain.OrderFilters) map[string]string {
	params := make(map[string]string)
	if f.Status != "" {
		params["status"] = string(f.Status)
	}
	if f.DateFrom != nil {
		params["date_from"] = f.DateFrom.Format("2006-01-02")
	}
	if f.DateTo != nil {
		params["date_to"] = f.DateTo.Format("2006-01-02")
	}
	if f.TableNumber != "" {
		params["table_number"] = f.TableNumber
	}
	if f.Search != "" {
		params["search"] = f.Search
	}
	if f.Page > 0 {
		params["page"] = strconv.Itoa(f.Page)
	}
	if f.PerPage > 0 {
		params["per_page"] = strconv.Itoa(f.PerPage)
	}
	return params
}
