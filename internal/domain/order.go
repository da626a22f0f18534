package domain

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusValidated  Status = "validated"
	StatusInProgress Status = "in_progress"
	StatusServed     Status = "served"
	StatusCancelled  Status = "cancelled"
)

// Statuses returns every order status in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusValidated,
		StatusInProgress,
		StatusServed,
		StatusCancelled,
	}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusValidated, StatusInProgress, StatusServed, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           uint        `json:"id"`
	OrderNumber  string      `json:"order_number"`
	TableNumber  string      `json:"table_number"`
	CustomerName *string     `json:"customer_name"`
	Status       Status      `json:"status"`
	TotalPrice   int64       `json:"total_price"`
	UserID       uint        `json:"user_id"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// ItemsTotal sums the item totals in minor currency units. An order is
// consistent when TotalPrice equals this sum.
func (o Order) ItemsTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.TotalPrice
	}
	return total
}

type OrderItem struct {
	ID         uint      `json:"id"`
	OrderID    uint      `json:"order_id"`
	ProductID  uint      `json:"product_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  int64     `json:"unit_price"`
	TotalPrice int64     `json:"total_price"`
	Notes      *string   `json:"notes"`
	Product    *Product  `json:"product,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewOrderItem builds a line with its total derived from quantity and unit
// price, never taken from the caller.
func NewOrderItem(productID uint, quantity int, unitPrice int64, notes *string) OrderItem {
	return OrderItem{
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: int64(quantity) * unitPrice,
		Notes:      notes,
	}
}
