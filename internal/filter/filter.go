// Package filter evaluates declarative predicates over already-fetched order
// collections. Screens describe what they filter on; this package decides how.
package filter

import (
	"strings"
	"time"

	"ardoise/internal/domain"
)

type Field string

const (
	FieldStatus      Field = "status"
	FieldOrderNumber Field = "order_number"
	FieldTableNumber Field = "table_number"
	FieldCustomer    Field = "customer_name"
	FieldCreatedAt   Field = "created_at"

	// FieldSearchable matches against every free-text field of an order:
	// order number, table number and customer name.
	FieldSearchable Field = "searchable"
)

type Op string

const (
	OpEq       Op = "eq"
	OpContains Op = "contains"
	OpOnAfter  Op = "on_after"
	OpOnBefore Op = "on_before"
)

// Spec is one field/operator/value predicate.
type Spec struct {
	Field Field
	Op    Op
	Value any
}

// Match reports whether one order satisfies the spec. A spec that does not
// apply to the order's data (wrong value type, unknown field) matches nothing.
func (s Spec) Match(o domain.Order) bool {
	switch s.Op {
	case OpEq:
		want, ok := s.Value.(string)
		if !ok {
			return false
		}
		return fieldValue(o, s.Field) == want

	case OpContains:
		want, ok := s.Value.(string)
		if !ok {
			return false
		}
		needle := strings.ToLower(want)
		if s.Field == FieldSearchable {
			for _, f := range []Field{FieldOrderNumber, FieldTableNumber, FieldCustomer} {
				if strings.Contains(strings.ToLower(fieldValue(o, f)), needle) {
					return true
				}
			}
			return false
		}
		return strings.Contains(strings.ToLower(fieldValue(o, s.Field)), needle)

	case OpOnAfter:
		want, ok := s.Value.(time.Time)
		if !ok || s.Field != FieldCreatedAt {
			return false
		}
		return !o.CreatedAt.Before(want)

	case OpOnBefore:
		want, ok := s.Value.(time.Time)
		if !ok || s.Field != FieldCreatedAt {
			return false
		}
		return !o.CreatedAt.After(want)
	}

	return false
}

func fieldValue(o domain.Order, f Field) string {
	switch f {
	case FieldStatus:
		return string(o.Status)
	case FieldOrderNumber:
		return o.OrderNumber
	case FieldTableNumber:
		return o.TableNumber
	case FieldCustomer:
		if o.CustomerName == nil {
			return ""
		}
		return *o.CustomerName
	}
	return ""
}

// Matches reports whether an order satisfies every spec.
func Matches(o domain.Order, specs []Spec) bool {
	for _, s := range specs {
		if !s.Match(o) {
			return false
		}
	}
	return true
}

// FromOrderFilters expands an OrderFilters DTO into its predicate list.
// Pagination is not a predicate and is ignored here.
func FromOrderFilters(f domain.OrderFilters) []Spec {
	var specs []Spec
	if f.Status != "" {
		specs = append(specs, Spec{Field: FieldStatus, Op: OpEq, Value: string(f.Status)})
	}
	if f.TableNumber != "" {
		specs = append(specs, Spec{Field: FieldTableNumber, Op: OpEq, Value: f.TableNumber})
	}
	if f.Search != "" {
		specs = append(specs, Spec{Field: FieldSearchable, Op: OpContains, Value: f.Search})
	}
	if f.DateFrom != nil {
		specs = append(specs, Spec{Field: FieldCreatedAt, Op: OpOnAfter, Value: *f.DateFrom})
	}
	if f.DateTo != nil {
		specs = append(specs, Spec{Field: FieldCreatedAt, Op: OpOnBefore, Value: *f.DateTo})
	}
	return specs
}

// Apply filters a collection in place of the backend's query parameters.
func Apply(orders []domain.Order, f domain.OrderFilters) []domain.Order {
	specs := FromOrderFilters(f)
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if Matches(o, specs) {
			out = append(out, o)
		}
	}
	return out
}
