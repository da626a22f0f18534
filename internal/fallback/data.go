package fallback

import (
	"time"

	"ardoise/internal/domain"
)

func strptr(s string) *string { return &s }

var fixtureDay = time.Date(2025, 6, 14, 11, 30, 0, 0, time.UTC)

var categories = []domain.Category{
	{ID: 1, Name: "Entrées", Active: true, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 2, Name: "Plats", Description: strptr("Plats principaux"), Active: true, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 3, Name: "Desserts", Active: true, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 4, Name: "Boissons", Active: true, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
}

var products = []domain.Product{
	{ID: 1, Name: "Salade César", Description: strptr("Laitue romaine, parmesan, croûtons"), Price: 980, CategoryID: 1, Available: true, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 2, Name: "Burger Classique", Description: strptr("Boeuf, cheddar, frites maison"), Price: 1250, CategoryID: 2, Available: true, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 3, Name: "Pizza Margherita", Price: 1100, CategoryID: 2, Available: true, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 4, Name: "Café Expresso", Price: 250, CategoryID: 4, Available: true, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 5, Name: "Crème Brûlée", Price: 650, CategoryID: 3, Available: false, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
}

var users = []domain.User{
	{ID: 1, Name: "Amélie Fontaine", Email: "amelie@ardoise.fr", Role: domain.RoleAdmin, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 2, Name: "Karim Benali", Email: "karim@ardoise.fr", Role: domain.RoleManager, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 3, Name: "Lucie Moreau", Email: "lucie@ardoise.fr", Role: domain.RoleServeur, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
	{ID: 4, Name: "Paolo Ricci", Email: "paolo@ardoise.fr", Role: domain.RoleCuisinier, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
}

// Exactly three orders, one per status bucket exercised by the dashboards.
var orders = []domain.Order{
	{
		ID:           1,
		OrderNumber:  "C001",
		TableNumber:  "3",
		CustomerName: strptr("Martin Dupont"),
		Status:       domain.StatusValidated,
		TotalPrice:   3000,
		UserID:       3,
		Items: []domain.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 2, Quantity: 2, UnitPrice: 1250, TotalPrice: 2500, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
			{ID: 2, OrderID: 1, ProductID: 4, Quantity: 2, UnitPrice: 250, TotalPrice: 500, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
		},
		CreatedAt: fixtureDay.Add(-2 * time.Hour),
		UpdatedAt: fixtureDay.Add(-90 * time.Minute),
	},
	{
		ID:          2,
		OrderNumber: "C002",
		TableNumber: "7",
		Status:      domain.StatusPending,
		TotalPrice:  2080,
		UserID:      3,
		Items: []domain.OrderItem{
			{ID: 3, OrderID: 2, ProductID: 1, Quantity: 1, UnitPrice: 980, TotalPrice: 980, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
			{ID: 4, OrderID: 2, ProductID: 3, Quantity: 1, UnitPrice: 1100, TotalPrice: 1100, Notes: strptr("bien cuite"), CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
		},
		CreatedAt: fixtureDay.Add(-30 * time.Minute),
		UpdatedAt: fixtureDay.Add(-30 * time.Minute),
	},
	{
		ID:           3,
		OrderNumber:  "C003",
		TableNumber:  "1",
		CustomerName: strptr("Claire Petit"),
		Status:       domain.StatusServed,
		TotalPrice:   1150,
		UserID:       3,
		Items: []domain.OrderItem{
			{ID: 5, OrderID: 3, ProductID: 5, Quantity: 1, UnitPrice: 650, TotalPrice: 650, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
			{ID: 6, OrderID: 3, ProductID: 4, Quantity: 2, UnitPrice: 250, TotalPrice: 500, CreatedAt: fixtureDay, UpdatedAt: fixtureDay},
		},
		CreatedAt: fixtureDay.Add(-4 * time.Hour),
		UpdatedAt: fixtureDay.Add(-3 * time.Hour),
	},
}

var stats = domain.DashboardStats{
	TotalOrders:  3,
	TotalRevenue: 6230,
	StatusCounts: map[domain.Status]int{
		domain.StatusValidated: 1,
		domain.StatusPending:   1,
		domain.StatusServed:    1,
	},
	TodayOrders:   3,
	TodayRevenue:  6230,
	OrdersGrowth:  12.5,
	RevenueGrowth: 8.3,
}
