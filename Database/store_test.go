package Database

import (
	"fmt"
	"strings"
	"testing"

	"Workshop/Models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestStore opens a fresh in-memory database per test.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	return NewStore(db)
}

// newOrderFixture creates a customer, vehicle and work order and returns the
// order's id.
func newOrderFixture(t *testing.T, s *Store, name, phone, plate, entryDate string) uint {
	t.Helper()
	_, err := s.AddCustomer(name, phone, "")
	require.NoError(t, err)
	vehicleID, err := s.AddVehicle(plate, "Toyota", "Corolla", phone)
	require.NoError(t, err)
	orderID, err := s.AddWorkOrder(vehicleID, entryDate, "")
	require.NoError(t, err)
	return orderID
}

func TestCustomerRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddCustomer("Maria Lopez", "555-0101", "12 Elm St")
	require.NoError(t, err)
	require.NotZero(t, id)

	customers, err := s.GetCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "Maria Lopez", customers[0].Name)
	require.Equal(t, "555-0101", customers[0].Phone)
	require.Equal(t, "12 Elm St", customers[0].Address)
}

func TestCustomersOrderedByName(t *testing.T) {
	s := newTestStore(t)

	for _, c := range []struct{ name, phone string }{
		{"Zoe", "555-0003"},
		{"Alan", "555-0001"},
		{"Mike", "555-0002"},
	} {
		_, err := s.AddCustomer(c.name, c.phone, "")
		require.NoError(t, err)
	}

	customers, err := s.GetCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 3)
	require.Equal(t, "Alan", customers[0].Name)
	require.Equal(t, "Mike", customers[1].Name)
	require.Equal(t, "Zoe", customers[2].Name)
}

func TestDuplicatePhoneRejected(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCustomer("First", "555-0101", "")
	require.NoError(t, err)

	_, err = s.AddCustomer("Second", "555-0101", "")
	require.Error(t, err)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	s := newTestStore(t)

	affected, err := s.UpdateCustomer(999, "Nobody", "555-0000", "")
	require.NoError(t, err)
	require.Zero(t, affected)

	affected, err = s.DeleteCustomer(999)
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestSearchCustomers(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCustomer("Maria Lopez", "555-0101", "")
	require.NoError(t, err)
	_, err = s.AddCustomer("John Smith", "555-0202", "")
	require.NoError(t, err)

	byName, err := s.SearchCustomers("Lopez")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "Maria Lopez", byName[0].Name)

	byPhone, err := s.SearchCustomers("0202")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	require.Equal(t, "John Smith", byPhone[0].Name)
}

func TestReAddCustomerAfterDelete(t *testing.T) {
	s := newTestStore(t)

	customerID, err := s.AddCustomer("Maria Lopez", "555-0101", "")
	require.NoError(t, err)
	_, err = s.AddVehicle("ABC-123", "Toyota", "Corolla", "555-0101")
	require.NoError(t, err)

	affected, err := s.DeleteCustomer(customerID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	vehicles, err := s.GetVehicles()
	require.NoError(t, err)
	require.Empty(t, vehicles)

	// The phone number is free again after the delete, and re-registering it
	// brings the orphaned vehicle back into listings.
	_, err = s.AddCustomer("Maria Lopez", "555-0101", "maria@example.com")
	require.NoError(t, err)

	vehicles, err = s.GetVehicles()
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	require.Equal(t, "ABC-123", vehicles[0].LicensePlate)
}
