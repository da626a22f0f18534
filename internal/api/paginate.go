package api

import "fmt"

const DefaultPerPage = 15

// Paginate slices a full collection into one Page with navigation links,
// mirroring the backend's collection envelope.
func Paginate[T any](items []T, page, perPage int, basePath string) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}

	total := len(items)
	lastPage := (total + perPage - 1) / perPage
	if lastPage == 0 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	from, to := 0, 0
	if total > 0 && start < total {
		from = start + 1
		to = end
	}

	link := func(p int) *string {
		s := fmt.Sprintf("%s?page=%d", basePath, p)
		return &s
	}

	links := PageLinks{
		First: link(1),
		Last:  link(lastPage),
	}
	if page > 1 {
		links.Prev = link(page - 1)
	}
	if page < lastPage {
		links.Next = link(page + 1)
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Data:        data,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
		From:        from,
		To:          to,
		Links:       links,
	}
}
