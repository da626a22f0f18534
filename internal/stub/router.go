package stub

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ardoise/internal/api"
	"ardoise/internal/domain"
	apperrors "ardoise/internal/errors"
)

type handler struct {
	store  *Store
	logger *zap.Logger
}

func NewRouter(store *Store, logger *zap.Logger) http.Handler {
	h := &handler{store: store, logger: logger}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.createOrder)
			r.Get("/{id}", h.getOrder)
			r.Put("/{id}", h.updateOrder)
			r.Delete("/{id}", h.deleteOrder)
		})

		r.Get("/dashboard/stats", h.stats)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/", h.createProduct)
			r.Get("/{id}", h.getProduct)
			r.Put("/{id}", h.updateProduct)
			r.Delete("/{id}", h.deleteProduct)
		})

		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}", h.getCategory)

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
	})

	return r
}

// Auth

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeValidationError(w, err)
		return
	}

	user, ok := h.store.Login(req.Email)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown email")
		return
	}

	h.writeJSON(w, http.StatusOK, api.Envelope[api.LoginResponse]{
		Data: api.LoginResponse{
			Token: "stub-" + uuid.New().String(),
			User:  user,
		},
		Success: true,
	})
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, api.Envelope[struct{}]{Message: "logged out", Success: true})
}

func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, api.Envelope[domain.User]{Data: h.store.CurrentUser(), Success: true})
}

// Orders

func (h *handler) listOrders(w http.ResponseWriter, r *http.Request) {
	filters, err := parseOrderFilters(r)
	if err != nil {
		h.writeValidationError(w, err)
		return
	}

	matched := h.store.ListOrders(filters)
	h.writeJSON(w, http.StatusOK, api.Paginate(matched, filters.Page, filters.PerPage, "/api/orders"))
}

func (h *handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	order, err := h.store.GetOrder(id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.Envelope[domain.Order]{Data: order, Success: true})
}

func (h *handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req api.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeValidationError(w, err)
		return
	}

	order := h.store.CreateOrder(req)
	h.logger.Info("stub order created", zap.String("order_number", order.OrderNumber))
	h.writeJSON(w, http.StatusCreated, api.Envelope[domain.Order]{Data: order, Message: "order created", Success: true})
}

func (h *handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req api.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeValidationError(w, err)
		return
	}

	order, err := h.store.UpdateOrder(id, req)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.Envelope[domain.Order]{Data: order, Message: "order updated", Success: true})
}

func (h *handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteOrder(id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.Envelope[struct{}]{Message: "order deleted", Success: true})
}

// Dashboard

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, api.Envelope[domain.DashboardStats]{Data: h.store.Stats(), Success: true})
}

// Catalog

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	h.writeJSON(w, http.StatusOK, api.Paginate(h.store.ListProducts(), page, perPage, "/api/products"))
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	product, err := h.store.GetProduct(id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.Envelope[domain.Product]{Data: product, Success: true})
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req api.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeValidationError(w, err)
		return
	}

	product := h.store.CreateProduct(req)
	h.writeJSON(w, http.StatusCreated, api.Envelope[domain.Product]{Data: product, Message: "product created", Success: true})
}

func (h *handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req api.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		h.writeValidationError(w, err)
		return
	}

	product, err := h.store.UpdateProduct(id, req)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.Envelope[domain.Product]{Data: product, Message: "product updated", Success: true})
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(id); err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.Envelope[struct{}]{Message: "product deleted", Success: true})
}

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	h.writeJSON(w, http.StatusOK, api.Paginate(h.store.ListCategories(), page, perPage, "/api/categories"))
}

func (h *handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	category, err := h.store.GetCategory(id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.Envelope[domain.Category]{Data: category, Success: true})
}

// Users

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	h.writeJSON(w, http.StatusOK, api.Paginate(h.store.ListUsers(), page, perPage, "/api/users"))
}

func (h *handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	user, err := h.store.GetUser(id)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, api.Envelope[domain.User]{Data: user, Success: true})
}

// Helpers

func (h *handler) pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func parseOrderFilters(r *http.Request) (domain.OrderFilters, error) {
	q := r.URL.Query()
	filters := domain.OrderFilters{
		TableNumber: q.Get("table_number"),
		Search:      q.Get("search"),
	}

	if raw := q.Get("status"); raw != "" {
		status := domain.Status(raw)
		if !status.Valid() {
			return filters, apperrors.NewValidationError("unknown order status",
				apperrors.ValidationDetail{Field: "status", Message: "unknown status " + raw})
		}
		filters.Status = status
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"date_from", &filters.DateFrom},
		{"date_to", &filters.DateTo},
	} {
		if raw := q.Get(p.name); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return filters, apperrors.NewValidationError("invalid date",
					apperrors.ValidationDetail{Field: p.name, Message: "dates use the YYYY-MM-DD format"})
			}
			if p.name == "date_to" {
				// Inclusive upper bound: the whole day counts.
				parsed = parsed.Add(24*time.Hour - time.Nanosecond)
			}
			*p.dst = &parsed
		}
	}

	filters.Page, filters.PerPage = parsePagination(r)
	return filters, nil
}

func parsePagination(r *http.Request) (page, perPage int) {
	q := r.URL.Query()
	page, _ = strconv.Atoi(q.Get("page"))
	perPage, _ = strconv.Atoi(q.Get("per_page"))
	return page, perPage
}

func (h *handler) writeValidationError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		h.writeJSON(w, http.StatusUnprocessableEntity, struct {
			Error   string                       `json:"error"`
			Message string                       `json:"message"`
			Details []apperrors.ValidationDetail `json:"details"`
			Success bool                         `json:"success"`
		}{
			Error:   "VALIDATION_ERROR",
			Message: ve.Message,
			Details: ve.Details,
		})
		return
	}
	h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}

func (h *handler) writeStoreError(w http.ResponseWriter, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		h.writeError(w, http.StatusNotFound, "NOT_FOUND", nfe.Message)
		return
	}
	h.logger.Error("unexpected store error", zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (h *handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, api.ErrorResponse{Error: code, Message: message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
