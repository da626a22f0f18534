package domain

// DashboardStats is a derived aggregate, recomputed on every fetch, never
// persisted.
type DashboardStats struct {
	TotalOrders   int            `json:"total_orders"`
	TotalRevenue  int64          `json:"total_revenue"`
	StatusCounts  map[Status]int `json:"status_counts"`
	TodayOrders   int            `json:"today_orders"`
	TodayRevenue  int64          `json:"today_revenue"`
	OrdersGrowth  float64        `json:"orders_growth"`
	RevenueGrowth float64        `json:"revenue_growth"`
}
