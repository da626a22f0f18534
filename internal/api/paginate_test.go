package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_SplitsCollection(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := Paginate(items, 2, 3, "/api/orders")

	assert.Equal(t, []int{4, 5, 6}, page.Data)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.PerPage)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 3, page.LastPage)
	assert.Equal(t, 4, page.From)
	assert.Equal(t, 6, page.To)

	require.NotNil(t, page.Links.Prev)
	require.NotNil(t, page.Links.Next)
	assert.Equal(t, "/api/orders?page=1", *page.Links.Prev)
	assert.Equal(t, "/api/orders?page=3", *page.Links.Next)
}

func TestPaginate_FirstAndLastPages(t *testing.T) {
	items := []string{"a", "b", "c"}

	first := Paginate(items, 1, 2, "/api/products")
	assert.Nil(t, first.Links.Prev)
	require.NotNil(t, first.Links.Next)

	last := Paginate(items, 2, 2, "/api/products")
	assert.Equal(t, []string{"c"}, last.Data)
	assert.Nil(t, last.Links.Next)
	require.NotNil(t, last.Links.Prev)
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate([]int{}, 1, 10, "/api/orders")

	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 1, page.LastPage)
	assert.Equal(t, 0, page.From)
	assert.Equal(t, 0, page.To)
}

func TestPaginate_DefaultsAndClamping(t *testing.T) {
	items := make([]int, 20)

	page := Paginate(items, 0, 0, "/api/orders")
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, DefaultPerPage, page.PerPage)

	beyond := Paginate(items, 99, 15, "/api/orders")
	assert.Equal(t, 2, beyond.CurrentPage)
}
