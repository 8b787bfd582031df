package Database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func orderTotal(t *testing.T, s *Store, orderID uint) float64 {
	t.Helper()
	details, err := s.GetWorkOrderDetails(orderID)
	require.NoError(t, err)
	return details.TotalCost
}

func TestTotalTracksLineItems(t *testing.T) {
	s := newTestStore(t)
	orderID := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-08-01")

	require.Zero(t, orderTotal(t, s, orderID))

	_, err := s.AddService(orderID, "Oil Change", "Full synthetic", 2, 50, "")
	require.NoError(t, err)
	partID, err := s.AddSparePart(orderID, "Oil Filter", "", 1, 30, "")
	require.NoError(t, err)

	require.InDelta(t, 130.0, orderTotal(t, s, orderID), 1e-9)

	affected, err := s.DeleteSparePart(partID, orderID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	require.InDelta(t, 100.0, orderTotal(t, s, orderID), 1e-9)
}

func TestTotalTracksLineItemUpdates(t *testing.T) {
	s := newTestStore(t)
	orderID := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-08-01")

	serviceID, err := s.AddService(orderID, "Brake Repair", "", 1, 200, "")
	require.NoError(t, err)
	require.InDelta(t, 200.0, orderTotal(t, s, orderID), 1e-9)

	affected, err := s.UpdateService(serviceID, orderID, "Brake Repair", "front pads", 2, 150, "")
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
	require.InDelta(t, 300.0, orderTotal(t, s, orderID), 1e-9)
}

func TestLineItemsFromOtherOrdersDoNotLeak(t *testing.T) {
	s := newTestStore(t)

	firstOrder := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-08-01")
	secondOrderVehicle, err := s.AddVehicle("DEF-456", "Honda", "Civic", "555-0101")
	require.NoError(t, err)
	secondOrder, err := s.AddWorkOrder(secondOrderVehicle, "2026-08-02", "")
	require.NoError(t, err)

	_, err = s.AddService(firstOrder, "Oil Change", "", 1, 60, "")
	require.NoError(t, err)
	_, err = s.AddService(secondOrder, "Tire Rotation", "", 1, 40, "")
	require.NoError(t, err)

	require.InDelta(t, 60.0, orderTotal(t, s, firstOrder), 1e-9)
	require.InDelta(t, 40.0, orderTotal(t, s, secondOrder), 1e-9)
}

func TestGetLineItemByID(t *testing.T) {
	s := newTestStore(t)
	orderID := newOrderFixture(t, s, "Maria Lopez", "555-0101", "ABC-123", "2026-08-01")

	serviceID, err := s.AddService(orderID, "Oil Change", "", 1, 60, "")
	require.NoError(t, err)

	service, err := s.GetServiceByID(serviceID)
	require.NoError(t, err)
	require.NotNil(t, service)
	require.Equal(t, "Oil Change", service.Name)

	missing, err := s.GetServiceByID(999)
	require.NoError(t, err)
	require.Nil(t, missing)

	part, err := s.GetSparePartByID(999)
	require.NoError(t, err)
	require.Nil(t, part)
}
