package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ardoise/internal/domain"
)

func TestGet_KnownKeys(t *testing.T) {
	for _, key := range []Key{KeyOrders, KeyStats, KeyProducts, KeyCategories, KeyUsers, KeyCurrentUser} {
		data, err := Get(key)
		require.NoError(t, err, "key %q", key)
		assert.NotNil(t, data, "key %q", key)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	data, err := Get(Key("reservations"))
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrNoFallback)
}

func TestOrders_FixedDataset(t *testing.T) {
	orders := Orders()
	require.Len(t, orders, 3)

	statuses := make(map[domain.Status]int)
	for _, o := range orders {
		statuses[o.Status]++
	}
	assert.Equal(t, 1, statuses[domain.StatusValidated])
	assert.Equal(t, 1, statuses[domain.StatusPending])
	assert.Equal(t, 1, statuses[domain.StatusServed])

	assert.Equal(t, "C001", orders[0].OrderNumber)
	assert.Equal(t, "C002", orders[1].OrderNumber)
	assert.Equal(t, "C003", orders[2].OrderNumber)
}

func TestOrders_TotalsConsistent(t *testing.T) {
	for _, o := range Orders() {
		assert.Equal(t, o.ItemsTotal(), o.TotalPrice, "order %s", o.OrderNumber)
	}
}

func TestOrders_CloneIsolation(t *testing.T) {
	first := Orders()
	first[0].Status = domain.StatusCancelled
	first[0].Items[0].Quantity = 99
	*first[0].CustomerName = "mutated"

	second := Orders()
	assert.Equal(t, domain.StatusValidated, second[0].Status)
	assert.Equal(t, 2, second[0].Items[0].Quantity)
	assert.Equal(t, "Martin Dupont", *second[0].CustomerName)
}

func TestStats_CloneIsolation(t *testing.T) {
	s := Stats()
	s.StatusCounts[domain.StatusCancelled] = 42

	assert.NotContains(t, Stats().StatusCounts, domain.StatusCancelled)
	assert.Equal(t, 3, Stats().TotalOrders)
}

func TestStats_ConsistentWithOrders(t *testing.T) {
	s := Stats()
	orders := Orders()

	assert.Equal(t, len(orders), s.TotalOrders)

	var revenue int64
	for _, o := range orders {
		revenue += o.TotalPrice
	}
	assert.Equal(t, revenue, s.TotalRevenue)
}

func TestCurrentUser_IsServeur(t *testing.T) {
	assert.Equal(t, domain.RoleServeur, CurrentUser().Role)
}

func TestProducts_Dataset(t *testing.T) {
	products := Products()
	require.Len(t, products, 5)

	products[0].Name = "mutated"
	assert.Equal(t, "Salade César", Products()[0].Name)
}
