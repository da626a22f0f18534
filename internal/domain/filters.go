package domain

import "time"

// OrderFilters narrows an order listing. Zero values mean "no constraint".
type OrderFilters struct {
	Status      Status
	DateFrom    *time.Time
	DateTo      *time.Time
	TableNumber string
	Search      string
	Page        int
	PerPage     int
}

func (f OrderFilters) Empty() bool {
	return f.Status == "" && f.DateFrom == nil && f.DateTo == nil &&
		f.TableNumber == "" && f.Search == ""
}
