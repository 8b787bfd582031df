package Database

import (
	"testing"

	"Workshop/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairStatistics(t *testing.T) {
	s := newTestStore(t)

	first := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-07-10")
	_, err := s.AddService(first, "Oil Change", "", 1, 100, "")
	require.NoError(t, err)
	_, err = s.UpdateWorkOrderStatus(first, Models.StatusCompleted)
	require.NoError(t, err)

	vehicleID, err := s.AddVehicle("DEF-456", "Honda", "Civic", "555-0101")
	require.NoError(t, err)
	second, err := s.AddWorkOrder(vehicleID, "2026-07-20", "")
	require.NoError(t, err)
	_, err = s.AddService(second, "Oil Change", "", 2, 50, "")
	require.NoError(t, err)
	_, err = s.AddService(second, "Brake Repair", "", 1, 200, "")
	require.NoError(t, err)

	stats, err := s.GetRepairStatistics("", "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.EqualValues(t, 1, stats.CompletedOrders)
	assert.EqualValues(t, 1, stats.OpenOrders)
	assert.InDelta(t, 400.0, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 200.0, stats.AvgOrderValue, 1e-9)

	require.NotEmpty(t, stats.TopServices)
	assert.Equal(t, "Oil Change", stats.TopServices[0].Name)
	assert.EqualValues(t, 2, stats.TopServices[0].UsageCount)
	assert.EqualValues(t, 3, stats.TopServices[0].TotalQuantity)

	require.Len(t, stats.TopCustomers, 1)
	assert.Equal(t, "Maria Lopez", stats.TopCustomers[0].Name)
	assert.EqualValues(t, 2, stats.TopCustomers[0].OrderCount)
	assert.InDelta(t, 400.0, stats.TopCustomers[0].TotalSpent, 1e-9)
}

func TestRepairStatisticsDateBounds(t *testing.T) {
	s := newTestStore(t)

	inRange := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-07-10")
	_, err := s.AddService(inRange, "Oil Change", "", 1, 100, "")
	require.NoError(t, err)

	vehicleID, err := s.AddVehicle("DEF-456", "Honda", "Civic", "555-0101")
	require.NoError(t, err)
	outOfRange, err := s.AddWorkOrder(vehicleID, "2026-06-01", "")
	require.NoError(t, err)
	_, err = s.AddService(outOfRange, "Brake Repair", "", 1, 300, "")
	require.NoError(t, err)

	stats, err := s.GetRepairStatistics("2026-07-01", "2026-07-31")
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalOrders)
	assert.InDelta(t, 100.0, stats.TotalRevenue, 1e-9)
	require.Len(t, stats.TopServices, 1)
	assert.Equal(t, "Oil Change", stats.TopServices[0].Name)
}

func TestRepairStatisticsIdempotent(t *testing.T) {
	s := newTestStore(t)

	orderID := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-07-10")
	_, err := s.AddService(orderID, "Oil Change", "", 1, 100, "")
	require.NoError(t, err)

	first, err := s.GetRepairStatistics("2026-07-01", "2026-07-31")
	require.NoError(t, err)
	second, err := s.GetRepairStatistics("2026-07-01", "2026-07-31")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRevenueByPeriodOnlyCountsCompleted(t *testing.T) {
	s := newTestStore(t)

	open := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-08-05")
	_, err := s.AddService(open, "Oil Change", "", 1, 500, "")
	require.NoError(t, err)

	vehicleID, err := s.AddVehicle("DEF-456", "Honda", "Civic", "555-0101")
	require.NoError(t, err)
	completed, err := s.AddWorkOrder(vehicleID, "2026-08-12", "")
	require.NoError(t, err)
	_, err = s.AddService(completed, "Brake Repair", "", 1, 500, "")
	require.NoError(t, err)
	_, err = s.UpdateWorkOrderStatus(completed, Models.StatusCompleted)
	require.NoError(t, err)

	periods, err := s.GetRevenueByPeriod("monthly")
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, "2026-08", periods[0].Period)
	assert.EqualValues(t, 1, periods[0].OrderCount)
	assert.InDelta(t, 500.0, periods[0].Revenue, 1e-9)
	assert.InDelta(t, 500.0, periods[0].AvgOrderValue, 1e-9)
}

func TestRevenueByPeriodGranularities(t *testing.T) {
	s := newTestStore(t)

	for i, date := range []string{"2025-12-30", "2026-01-15", "2026-01-20"} {
		plate := string(rune('A'+i)) + "-100"
		phone := "555-010" + string(rune('1'+i))
		orderID := newOrderFixture(t, s, "Customer "+plate, phone, plate, date)
		_, err := s.AddService(orderID, "Brake Repair", "", 1, 100, "")
		require.NoError(t, err)
		_, err = s.UpdateWorkOrderStatus(orderID, Models.StatusCompleted)
		require.NoError(t, err)
	}

	daily, err := s.GetRevenueByPeriod("daily")
	require.NoError(t, err)
	require.Len(t, daily, 3)
	assert.Equal(t, "2026-01-20", daily[0].Period)

	monthly, err := s.GetRevenueByPeriod("monthly")
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, "2026-01", monthly[0].Period)
	assert.InDelta(t, 200.0, monthly[0].Revenue, 1e-9)

	yearly, err := s.GetRevenueByPeriod("yearly")
	require.NoError(t, err)
	require.Len(t, yearly, 2)
	assert.Equal(t, "2026", yearly[0].Period)
	assert.Equal(t, "2025", yearly[1].Period)

	// Anything that is not daily or monthly groups by year.
	fallback, err := s.GetRevenueByPeriod("weekly")
	require.NoError(t, err)
	assert.Equal(t, yearly, fallback)
}
