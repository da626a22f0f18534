// Package viewmodel translates raw domain values into display values. Every
// function is total: unknown input maps to a defined default, never a panic.
package viewmodel

import (
	"fmt"
	"strconv"
	"strings"

	"ardoise/internal/domain"
)

// Display color tokens.
const (
	ColorYellow = "yellow"
	ColorBlue   = "blue"
	ColorOrange = "orange"
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorGray   = "gray"
)

// StatusLabel maps an order status to its French display string. The five
// statuses stay visually distinct; an unknown status passes through raw.
func StatusLabel(s domain.Status) string {
	switch s {
	case domain.StatusPending:
		return "En attente"
	case domain.StatusValidated:
		return "Validée"
	case domain.StatusInProgress:
		return "En préparation"
	case domain.StatusServed:
		return "Servie"
	case domain.StatusCancelled:
		return "Annulée"
	default:
		return string(s)
	}
}

func StatusColor(s domain.Status) string {
	switch s {
	case domain.StatusPending:
		return ColorYellow
	case domain.StatusValidated:
		return ColorBlue
	case domain.StatusInProgress:
		return ColorOrange
	case domain.StatusServed:
		return ColorGreen
	case domain.StatusCancelled:
		return ColorRed
	default:
		return ColorGray
	}
}

func RoleLabel(r domain.Role) string {
	switch r {
	case domain.RoleAdmin:
		return "Administrateur"
	case domain.RoleManager:
		return "Gérant"
	case domain.RoleServeur:
		return "Serveur"
	case domain.RoleCuisinier:
		return "Cuisinier"
	default:
		return string(r)
	}
}

// FormatCurrency renders minor currency units as a French-style amount:
// 3200 → "32,00 €", 123456 → "1 234,56 €".
func FormatCurrency(minor int64) string {
	negative := minor < 0
	if negative {
		minor = -minor
	}

	euros := minor / 100
	cents := minor % 100

	s := fmt.Sprintf("%s,%02d €", groupThousands(strconv.FormatInt(euros, 10)), cents)
	if negative {
		s = "-" + s
	}
	return s
}

// ParseCurrency inverts FormatCurrency. It tolerates a missing "€" suffix and
// surrounding whitespace.
func ParseCurrency(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "€")
	s = strings.ReplaceAll(s, " ", "")

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	eurosPart, centsPart, found := strings.Cut(s, ",")
	if !found {
		centsPart = "00"
	}
	if len(centsPart) != 2 {
		return 0, fmt.Errorf("malformed amount %q: expected two decimal digits", s)
	}

	euros, err := strconv.ParseInt(eurosPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}
	cents, err := strconv.ParseInt(centsPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed amount %q: %w", s, err)
	}

	minor := euros*100 + cents
	if negative {
		minor = -minor
	}
	return minor, nil
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
