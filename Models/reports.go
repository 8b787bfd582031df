package Models

// RepairStatistics summarizes work order activity for an optional date range.
type RepairStatistics struct {
	TotalOrders     int64              `json:"total_orders"`
	CompletedOrders int64              `json:"completed_orders"`
	OpenOrders      int64              `json:"open_orders"`
	TotalRevenue    float64            `json:"total_revenue"`
	AvgOrderValue   float64            `json:"avg_order_value"`
	TopServices     []ServiceUsage     `json:"top_services"`
	TopCustomers    []CustomerActivity `json:"top_customers"`
}

type ServiceUsage struct {
	Name          string `json:"name"`
	UsageCount    int64  `json:"usage_count"`
	TotalQuantity int64  `json:"total_quantity"`
}

type CustomerActivity struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	OrderCount int64   `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
}

// RevenuePeriod is one bucket of the revenue-by-period report.
type RevenuePeriod struct {
	Period        string  `json:"period"`
	OrderCount    int64   `json:"order_count"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}
