package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ardoise/internal/domain"
	"ardoise/internal/fallback"
)

func TestApply_StatusPendingReturnsExactlyOne(t *testing.T) {
	got := Apply(fallback.Orders(), domain.OrderFilters{Status: domain.StatusPending})

	require.Len(t, got, 1)
	assert.Equal(t, "C002", got[0].OrderNumber)
}

func TestApply_SearchByOrderNumber(t *testing.T) {
	got := Apply(fallback.Orders(), domain.OrderFilters{Search: "C003"})

	require.Len(t, got, 1)
	assert.Equal(t, "C003", got[0].OrderNumber)
}

func TestApply_SearchSubstringMatchesAll(t *testing.T) {
	got := Apply(fallback.Orders(), domain.OrderFilters{Search: "C00"})

	assert.Len(t, got, 3)
}

func TestApply_UnmatchedSearchReturnsEmpty(t *testing.T) {
	got := Apply(fallback.Orders(), domain.OrderFilters{Search: "Z999"})

	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestApply_SearchByCustomerName(t *testing.T) {
	got := Apply(fallback.Orders(), domain.OrderFilters{Search: "dupont"})

	require.Len(t, got, 1)
	assert.Equal(t, "C001", got[0].OrderNumber)
}

func TestApply_TableNumberIsExactMatch(t *testing.T) {
	got := Apply(fallback.Orders(), domain.OrderFilters{TableNumber: "7"})
	require.Len(t, got, 1)
	assert.Equal(t, "C002", got[0].OrderNumber)

	// "1" must not match table "12": equality, not substring.
	orders := fallback.Orders()
	orders[0].TableNumber = "12"
	got = Apply(orders, domain.OrderFilters{TableNumber: "1"})
	require.Len(t, got, 1)
	assert.Equal(t, "C003", got[0].OrderNumber)
}

func TestApply_DateRange(t *testing.T) {
	orders := fallback.Orders()

	// C003 is the oldest fixture order; cut it off with date_from.
	from := orders[2].CreatedAt.Add(time.Minute)
	got := Apply(orders, domain.OrderFilters{DateFrom: &from})
	assert.Len(t, got, 2)

	to := orders[2].CreatedAt
	got = Apply(orders, domain.OrderFilters{DateTo: &to})
	require.Len(t, got, 1)
	assert.Equal(t, "C003", got[0].OrderNumber)
}

func TestApply_CombinedFilters(t *testing.T) {
	got := Apply(fallback.Orders(), domain.OrderFilters{
		Status: domain.StatusValidated,
		Search: "C00",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "C001", got[0].OrderNumber)

	got = Apply(fallback.Orders(), domain.OrderFilters{
		Status: domain.StatusValidated,
		Search: "C002",
	})
	assert.Empty(t, got)
}

func TestSpec_UnknownFieldMatchesNothing(t *testing.T) {
	spec := Spec{Field: Field("waiter"), Op: OpEq, Value: "x"}

	for _, o := range fallback.Orders() {
		assert.False(t, spec.Match(o))
	}
}

func TestSpec_WrongValueTypeMatchesNothing(t *testing.T) {
	spec := Spec{Field: FieldStatus, Op: OpEq, Value: 42}

	assert.False(t, spec.Match(fallback.Orders()[0]))
}

func TestMatches_NoSpecsMatchesEverything(t *testing.T) {
	for _, o := range fallback.Orders() {
		assert.True(t, Matches(o, nil))
	}
}
