// Package stub serves the fallback datasets over HTTP with the real REST
// shapes, so the client can be exercised without the actual backend. Writes
// mutate an in-memory copy only; nothing persists across restarts.
package stub

import (
	"fmt"
	"sync"
	"time"

	"ardoise/internal/api"
	"ardoise/internal/domain"
	apperrors "ardoise/internal/errors"
	"ardoise/internal/fallback"
	"ardoise/internal/filter"
)

type Store struct {
	mu            sync.Mutex
	orders        []domain.Order
	products      []domain.Product
	categories    []domain.Category
	users         []domain.User
	currentUser   domain.User
	nextOrderID   uint
	nextItemID    uint
	nextProductID uint
}

func NewStore() *Store {
	s := &Store{
		orders:      fallback.Orders(),
		products:    fallback.Products(),
		categories:  fallback.Categories(),
		users:       fallback.Users(),
		currentUser: fallback.CurrentUser(),
	}
	for _, o := range s.orders {
		if o.ID > s.nextOrderID {
			s.nextOrderID = o.ID
		}
		for _, item := range o.Items {
			if item.ID > s.nextItemID {
				s.nextItemID = item.ID
			}
		}
	}
	for _, p := range s.products {
		if p.ID > s.nextProductID {
			s.nextProductID = p.ID
		}
	}
	return s
}

// Orders

func (s *Store) ListOrders(filters domain.OrderFilters) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter.Apply(s.orders, filters)
}

func (s *Store) GetOrder(id uint) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, apperrors.NewNotFoundError(fmt.Sprintf("order %d not found", id))
}

func (s *Store) CreateOrder(req api.CreateOrderRequest) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID++
	now := time.Now().UTC()

	items := make([]domain.OrderItem, len(req.Items))
	for i, in := range req.Items {
		s.nextItemID++
		items[i] = domain.NewOrderItem(in.ProductID, in.Quantity, in.UnitPrice, in.Notes)
		items[i].ID = s.nextItemID
		items[i].OrderID = s.nextOrderID
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}

	order := domain.Order{
		ID:           s.nextOrderID,
		OrderNumber:  fmt.Sprintf("C%03d", s.nextOrderID),
		TableNumber:  req.TableNumber,
		CustomerName: req.CustomerName,
		Status:       domain.StatusPending,
		UserID:       s.currentUser.ID,
		Items:        items,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	order.TotalPrice = order.ItemsTotal()

	s.orders = append(s.orders, order)
	return order
}

func (s *Store) UpdateOrder(id uint, req api.UpdateOrderRequest) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if req.TableNumber != nil {
			s.orders[i].TableNumber = *req.TableNumber
		}
		if req.CustomerName != nil {
			s.orders[i].CustomerName = req.CustomerName
		}
		if req.Status != nil {
			s.orders[i].Status = *req.Status
		}
		s.orders[i].UpdatedAt = time.Now().UTC()
		return s.orders[i], nil
	}
	return domain.Order{}, apperrors.NewNotFoundError(fmt.Sprintf("order %d not found", id))
}

func (s *Store) DeleteOrder(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError(fmt.Sprintf("order %d not found", id))
}

// Stats derives the dashboard aggregate from the live order set, the way the
// backend recomputes it on every fetch.
func (s *Store) Stats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.DashboardStats{
		StatusCounts: make(map[domain.Status]int),
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for _, o := range s.orders {
		stats.TotalOrders++
		stats.TotalRevenue += o.TotalPrice
		stats.StatusCounts[o.Status]++
		if !o.CreatedAt.Before(today) {
			stats.TodayOrders++
			stats.TodayRevenue += o.TotalPrice
		}
	}
	return stats
}

// Catalog

func (s *Store) ListProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) GetProduct(id uint) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, apperrors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
}

func (s *Store) CreateProduct(req api.CreateProductRequest) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID++
	now := time.Now().UTC()

	product := domain.Product{
		ID:          s.nextProductID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products = append(s.products, product)
	return product
}

func (s *Store) UpdateProduct(id uint, req api.UpdateProductRequest) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if req.Name != nil {
			s.products[i].Name = *req.Name
		}
		if req.Description != nil {
			s.products[i].Description = req.Description
		}
		if req.Price != nil {
			s.products[i].Price = *req.Price
		}
		if req.CategoryID != nil {
			s.products[i].CategoryID = *req.CategoryID
		}
		if req.ImageURL != nil {
			s.products[i].ImageURL = req.ImageURL
		}
		if req.Available != nil {
			s.products[i].Available = *req.Available
		}
		s.products[i].UpdatedAt = time.Now().UTC()
		return s.products[i], nil
	}
	return domain.Product{}, apperrors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
}

func (s *Store) DeleteProduct(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
}

func (s *Store) ListCategories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) GetCategory(id uint) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Category{}, apperrors.NewNotFoundError(fmt.Sprintf("category %d not found", id))
}

// Users

func (s *Store) ListUsers() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) GetUser(id uint) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", id))
}

// Login matches a user by email; any password passes. It records the match as
// the current user for /api/auth/me.
func (s *Store) Login(email string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			s.currentUser = u
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) CurrentUser() domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}
