// Package fallback supplies static substitute datasets shaped exactly like the
// backend's responses, for offline mode and for transport-failure substitution.
package fallback

import (
	"errors"

	"ardoise/internal/domain"
)

// Key identifies a logical resource. The same names key the query cache, so a
// mutation invalidates exactly the resources the fallback provider knows.
type Key string

const (
	KeyOrders      Key = "orders"
	KeyStats       Key = "dashboard_stats"
	KeyProducts    Key = "products"
	KeyCategories  Key = "categories"
	KeyUsers       Key = "users"
	KeyCurrentUser Key = "current_user"
)

var ErrNoFallback = errors.New("no fallback data for resource")

// Get returns the dataset for a resource key, or ErrNoFallback for a key this
// provider does not cover. Returned values are copies; callers cannot corrupt
// the fixtures.
func Get(key Key) (any, error) {
	switch key {
	case KeyOrders:
		return Orders(), nil
	case KeyStats:
		return Stats(), nil
	case KeyProducts:
		return Products(), nil
	case KeyCategories:
		return Categories(), nil
	case KeyUsers:
		return Users(), nil
	case KeyCurrentUser:
		return CurrentUser(), nil
	default:
		return nil, ErrNoFallback
	}
}

func Orders() []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, o := range orders {
		out[i] = cloneOrder(o)
	}
	return out
}

func Stats() domain.DashboardStats {
	s := stats
	s.StatusCounts = make(map[domain.Status]int, len(stats.StatusCounts))
	for k, v := range stats.StatusCounts {
		s.StatusCounts[k] = v
	}
	return s
}

func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out
}

func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	for i := range out {
		out[i].Description = cloneString(out[i].Description)
		out[i].ImageURL = cloneString(out[i].ImageURL)
	}
	return out
}

func Users() []domain.User {
	out := make([]domain.User, len(users))
	copy(out, users)
	return out
}

func CurrentUser() domain.User {
	return users[2] // the logged-in serveur
}

func cloneOrder(o domain.Order) domain.Order {
	out := o
	out.CustomerName = cloneString(o.CustomerName)
	out.Items = make([]domain.OrderItem, len(o.Items))
	for i, item := range o.Items {
		out.Items[i] = item
		out.Items[i].Notes = cloneString(item.Notes)
		if item.Product != nil {
			p := cloneProduct(*item.Product)
			out.Items[i].Product = &p
		}
	}
	return out
}

func cloneProduct(p domain.Product) domain.Product {
	out := p
	out.Description = cloneString(p.Description)
	out.ImageURL = cloneString(p.ImageURL)
	if p.Category != nil {
		c := *p.Category
		c.Description = cloneString(c.Description)
		c.ImageURL = cloneString(c.ImageURL)
		out.Category = &c
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
