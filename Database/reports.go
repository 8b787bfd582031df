package Database

import (
	"Workshop/Models"
)

// GetRepairStatistics computes the aggregate counters plus the top 10
// services and customers, optionally bounded by an inclusive entry_date
// range. Pass empty strings for an unbounded report.
func (s *Store) GetRepairStatistics(startDate, endDate string) (*Models.RepairStatistics, error) {
	dateFilter := ""
	var params []interface{}
	if startDate != "" && endDate != "" {
		dateFilter = "WHERE wo.entry_date BETWEEN ? AND ?"
		params = []interface{}{startDate, endDate}
	}

	var summary struct {
		TotalOrders     int64
		CompletedOrders int64
		OpenOrders      int64
		TotalRevenue    float64
		AvgOrderValue   float64
	}
	err := s.DB.Raw(`
		SELECT
			COUNT(*) as total_orders,
			COALESCE(SUM(CASE WHEN status = 'Completed' THEN 1 ELSE 0 END), 0) as completed_orders,
			COALESCE(SUM(CASE WHEN status = 'Open' THEN 1 ELSE 0 END), 0) as open_orders,
			COALESCE(SUM(total_cost), 0) as total_revenue,
			COALESCE(AVG(total_cost), 0) as avg_order_value
		FROM work_orders wo
		`+dateFilter, params...).Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	stats := &Models.RepairStatistics{
		TotalOrders:     summary.TotalOrders,
		CompletedOrders: summary.CompletedOrders,
		OpenOrders:      summary.OpenOrders,
		TotalRevenue:    summary.TotalRevenue,
		AvgOrderValue:   summary.AvgOrderValue,
	}

	err = s.DB.Raw(`
		SELECT s.name, COUNT(*) as usage_count, SUM(s.quantity) as total_quantity
		FROM services s
		JOIN work_orders wo ON s.work_order_id = wo.id
		`+dateFilter+`
		GROUP BY s.name
		ORDER BY usage_count DESC
		LIMIT 10`, params...).Scan(&stats.TopServices).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Raw(`
		SELECT c.name, c.phone, COUNT(wo.id) as order_count, SUM(wo.total_cost) as total_spent
		FROM customers c
		JOIN vehicles v ON c.phone = v.customer_phone
		JOIN work_orders wo ON v.id = wo.vehicle_id
		`+dateFilter+`
		GROUP BY c.name, c.phone
		ORDER BY order_count DESC
		LIMIT 10`, params...).Scan(&stats.TopCustomers).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetRevenueByPeriod groups Completed work orders by day, month or year and
// returns the most recent 12 periods, newest first. Orders that are not
// Completed carry no realized revenue and are excluded on purpose.
func (s *Store) GetRevenueByPeriod(period string) ([]Models.RevenuePeriod, error) {
	// entry_date is stored as YYYY-MM-DD, so the period key is a prefix
	var periodExpr string
	switch period {
	case "daily":
		periodExpr = "substr(wo.entry_date, 1, 10)"
	case "monthly":
		periodExpr = "substr(wo.entry_date, 1, 7)"
	default: // yearly
		periodExpr = "substr(wo.entry_date, 1, 4)"
	}

	var periods []Models.RevenuePeriod
	err := s.DB.Raw(`
		SELECT
			` + periodExpr + ` as period,
			COUNT(*) as order_count,
			SUM(total_cost) as revenue,
			AVG(total_cost) as avg_order_value
		FROM work_orders wo
		WHERE wo.status = 'Completed'
		GROUP BY ` + periodExpr + `
		ORDER BY period DESC
		LIMIT 12`).Scan(&periods).Error
	return periods, err
}
