package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"ardoise/internal/api"
	"ardoise/internal/domain"
)

// Auth

func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var env api.Envelope[api.LoginResponse]
	if err := c.request(ctx, http.MethodPost, "/api/auth/login", req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.request(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var env api.Envelope[domain.User]
	if err := c.request(ctx, http.MethodGet, "/api/auth/me", nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Orders

func (c *Client) ListOrders(ctx context.Context, filters domain.OrderFilters) (*api.Page[domain.Order], error) {
	var page api.Page[domain.Order]
	if err := c.request(ctx, http.MethodGet, "/api/orders"+encodeOrderFilters(filters), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetOrder(ctx context.Context, id uint) (*domain.Order, error) {
	var env api.Envelope[domain.Order]
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*domain.Order, error) {
	var env api.Envelope[domain.Order]
	if err := c.request(ctx, http.MethodPost, "/api/orders", req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id uint, req api.UpdateOrderRequest) (*domain.Order, error) {
	var env api.Envelope[domain.Order]
	if err := c.request(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d", id), req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id uint) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/%d", id), nil, nil)
}

// Dashboard

func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var env api.Envelope[domain.DashboardStats]
	if err := c.request(ctx, http.MethodGet, "/api/dashboard/stats", nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Catalog

func (c *Client) ListProducts(ctx context.Context) (*api.Page[domain.Product], error) {
	var page api.Page[domain.Product]
	if err := c.request(ctx, http.MethodGet, "/api/products", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	var env api.Envelope[domain.Product]
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) CreateProduct(ctx context.Context, req api.CreateProductRequest) (*domain.Product, error) {
	var env api.Envelope[domain.Product]
	if err := c.request(ctx, http.MethodPost, "/api/products", req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uint, req api.UpdateProductRequest) (*domain.Product, error) {
	var env api.Envelope[domain.Product]
	if err := c.request(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), req, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) (*api.Page[domain.Category], error) {
	var page api.Page[domain.Category]
	if err := c.request(ctx, http.MethodGet, "/api/categories", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetCategory(ctx context.Context, id uint) (*domain.Category, error) {
	var env api.Envelope[domain.Category]
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/categories/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Users

func (c *Client) ListUsers(ctx context.Context) (*api.Page[domain.User], error) {
	var page api.Page[domain.User]
	if err := c.request(ctx, http.MethodGet, "/api/users", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	var env api.Envelope[domain.User]
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func encodeOrderFilters(f domain.OrderFilters) string {
	values := url.Values{}
	if f.Status != "" {
		values.Set("status", string(f.Status))
	}
	if f.DateFrom != nil {
		values.Set("date_from", f.DateFrom.Format("2006-01-02"))
	}
	if f.DateTo != nil {
		values.Set("date_to", f.DateTo.Format("2006-01-02"))
	}
	if f.TableNumber != "" {
		values.Set("table_number", f.TableNumber)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.Page > 0 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(f.PerPage))
	}

	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
