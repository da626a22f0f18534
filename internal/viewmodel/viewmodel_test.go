package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ardoise/internal/domain"
)

func TestStatusLabel_AllStatuses(t *testing.T) {
	expected := map[domain.Status]string{
		domain.StatusPending:    "En attente",
		domain.StatusValidated:  "Validée",
		domain.StatusInProgress: "En préparation",
		domain.StatusServed:     "Servie",
		domain.StatusCancelled:  "Annulée",
	}

	for _, s := range domain.Statuses() {
		label := StatusLabel(s)
		assert.NotEmpty(t, label)
		assert.Equal(t, expected[s], label)
	}
}

func TestStatusLabel_UnknownPassesThrough(t *testing.T) {
	assert.Equal(t, "delivered", StatusLabel(domain.Status("delivered")))
}

func TestStatusColor_AllStatuses(t *testing.T) {
	tokens := map[string]bool{
		ColorYellow: true, ColorBlue: true, ColorOrange: true,
		ColorGreen: true, ColorRed: true, ColorGray: true,
	}

	for _, s := range domain.Statuses() {
		color := StatusColor(s)
		assert.True(t, tokens[color], "status %q yielded unknown token %q", s, color)
		assert.NotEqual(t, ColorGray, color, "known status must not use the default bucket")
	}
}

func TestStatusColor_UnknownDefaults(t *testing.T) {
	assert.Equal(t, ColorGray, StatusColor(domain.Status("whatever")))
	assert.Equal(t, ColorGray, StatusColor(domain.Status("")))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{3200, "32,00 €"},
		{0, "0,00 €"},
		{5, "0,05 €"},
		{1150, "11,50 €"},
		{123456, "1 234,56 €"},
		{100000000, "1 000 000,00 €"},
		{-1234, "-12,34 €"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.minor), "minor=%d", tt.minor)
	}
}

func TestParseCurrency_RoundTrip(t *testing.T) {
	for _, minor := range []int64{0, 5, 99, 100, 3200, 123456, 100000000, -1234} {
		parsed, err := ParseCurrency(FormatCurrency(minor))
		require.NoError(t, err, "minor=%d", minor)
		assert.Equal(t, minor, parsed)
	}
}

func TestParseCurrency_Malformed(t *testing.T) {
	for _, input := range []string{"abc", "12,3 €", "12,345 €", ""} {
		_, err := ParseCurrency(input)
		assert.Error(t, err, "input=%q", input)
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Serveur", RoleLabel(domain.RoleServeur))
	assert.Equal(t, "Gérant", RoleLabel(domain.RoleManager))
	assert.Equal(t, "stagiaire", RoleLabel(domain.Role("stagiaire")))
}
