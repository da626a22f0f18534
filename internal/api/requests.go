package api

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"ardoise/internal/domain"
	apperrors "ardoise/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return toValidationError(validate.Struct(r))
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type OrderItemInput struct {
	ProductID  uint    `json:"product_id" validate:"required,gt=0"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice  int64   `json:"unit_price" validate:"gte=0"`
	TotalPrice int64   `json:"total_price"`
	Notes      *string `json:"notes,omitempty"`
}

type CreateOrderRequest struct {
	TableNumber  string           `json:"table_number" validate:"required"`
	CustomerName *string          `json:"customer_name,omitempty"`
	Items        []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	TotalPrice   int64            `json:"total_price"`
}

// NewCreateOrderRequest derives every total from quantity and unit price, so
// an order can never be submitted with a total that disagrees with its items.
func NewCreateOrderRequest(tableNumber string, customerName *string, items []OrderItemInput) CreateOrderRequest {
	var total int64
	for i := range items {
		items[i].TotalPrice = int64(items[i].Quantity) * items[i].UnitPrice
		total += items[i].TotalPrice
	}
	return CreateOrderRequest{
		TableNumber:  tableNumber,
		CustomerName: customerName,
		Items:        items,
		TotalPrice:   total,
	}
}

func (r CreateOrderRequest) Validate() error {
	if err := toValidationError(validate.Struct(r)); err != nil {
		return err
	}

	var sum int64
	for _, item := range r.Items {
		if item.TotalPrice != int64(item.Quantity)*item.UnitPrice {
			return apperrors.NewValidationError("item total does not match quantity × unit price",
				apperrors.ValidationDetail{
					Field:   "items",
					Message: "total_price must equal quantity multiplied by unit_price",
				})
		}
		sum += item.TotalPrice
	}
	if r.TotalPrice != sum {
		return apperrors.NewValidationError("order total does not match the sum of its items",
			apperrors.ValidationDetail{
				Field:   "total_price",
				Message: "total_price must equal the sum of item totals",
			})
	}

	return nil
}

type UpdateOrderRequest struct {
	TableNumber  *string        `json:"table_number,omitempty"`
	CustomerName *string        `json:"customer_name,omitempty"`
	Status       *domain.Status `json:"status,omitempty"`
}

func (r UpdateOrderRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return apperrors.NewValidationError("unknown order status",
			apperrors.ValidationDetail{
				Field:   "status",
				Message: "status must be one of pending, validated, in_progress, served, cancelled",
			})
	}
	if r.TableNumber != nil && *r.TableNumber == "" {
		return apperrors.NewValidationError("table number must not be empty",
			apperrors.ValidationDetail{
				Field:   "table_number",
				Message: "table_number must not be empty",
			})
	}
	return nil
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price" validate:"gte=0"`
	CategoryID  uint    `json:"category_id" validate:"required,gt=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Available   bool    `json:"available"`
}

func (r CreateProductRequest) Validate() error {
	return toValidationError(validate.Struct(r))
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

func (r UpdateProductRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return apperrors.NewValidationError("product name must not be empty",
			apperrors.ValidationDetail{Field: "name", Message: "name must not be empty"})
	}
	if r.Price != nil && *r.Price < 0 {
		return apperrors.NewValidationError("product price must not be negative",
			apperrors.ValidationDetail{Field: "price", Message: "price must be zero or positive"})
	}
	return nil
}

// toValidationError converts validator output into the module's error
// taxonomy, one detail per failed field.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewInternalError("validating request", err)
	}

	details := make([]apperrors.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fe.Field(),
			Message: "failed " + fe.Tag() + " constraint",
		})
	}
	return apperrors.NewValidationError("validation failed", details...)
}
