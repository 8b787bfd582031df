package Database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVehicleListingExcludesOrphans(t *testing.T) {
	s := newTestStore(t)

	customerID, err := s.AddCustomer("Maria Lopez", "555-0101", "")
	require.NoError(t, err)
	_, err = s.AddVehicle("ABC-123", "Toyota", "Corolla", "555-0101")
	require.NoError(t, err)
	_, err = s.AddVehicle("XYZ-789", "Honda", "Civic", "555-9999") // no such customer
	require.NoError(t, err)

	vehicles, err := s.GetVehicles()
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	require.Equal(t, "ABC-123", vehicles[0].LicensePlate)
	require.Equal(t, "Maria Lopez", vehicles[0].CustomerName)

	// Deleting the customer makes its vehicle vanish from listings too.
	affected, err := s.DeleteCustomer(customerID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	vehicles, err = s.GetVehicles()
	require.NoError(t, err)
	require.Empty(t, vehicles)
}

func TestDuplicateLicensePlateRejected(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCustomer("Maria Lopez", "555-0101", "")
	require.NoError(t, err)
	_, err = s.AddVehicle("ABC-123", "Toyota", "Corolla", "555-0101")
	require.NoError(t, err)

	_, err = s.AddVehicle("ABC-123", "Honda", "Civic", "555-0101")
	require.Error(t, err)
}

func TestSearchVehicles(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCustomer("Maria Lopez", "555-0101", "")
	require.NoError(t, err)
	_, err = s.AddVehicle("ABC-123", "Toyota", "Corolla", "555-0101")
	require.NoError(t, err)
	_, err = s.AddVehicle("DEF-456", "Honda", "Civic", "555-0101")
	require.NoError(t, err)

	byPlate, err := s.SearchVehicles("ABC")
	require.NoError(t, err)
	require.Len(t, byPlate, 1)
	require.Equal(t, "ABC-123", byPlate[0].LicensePlate)

	byBrand, err := s.SearchVehicles("Honda")
	require.NoError(t, err)
	require.Len(t, byBrand, 1)
	require.Equal(t, "DEF-456", byBrand[0].LicensePlate)
}

func TestVehicleTypeHelpers(t *testing.T) {
	s := newTestStore(t)

	for _, vt := range [][2]string{
		{"Toyota", "Corolla"},
		{"Toyota", "Camry"},
		{"Honda", "Civic"},
	} {
		_, err := s.AddVehicleType(vt[0], vt[1])
		require.NoError(t, err)
	}

	// (brand, model) pairs are unique
	_, err := s.AddVehicleType("Toyota", "Corolla")
	require.Error(t, err)

	brands, err := s.GetBrands()
	require.NoError(t, err)
	require.Equal(t, []string{"Honda", "Toyota"}, brands)

	models, err := s.GetModelsByBrand("Toyota")
	require.NoError(t, err)
	require.Equal(t, []string{"Camry", "Corolla"}, models)
}

func TestReRegisterLicensePlateAfterDelete(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCustomer("Maria Lopez", "555-0101", "")
	require.NoError(t, err)
	vehicleID, err := s.AddVehicle("ABC-123", "Toyota", "Corolla", "555-0101")
	require.NoError(t, err)

	affected, err := s.DeleteVehicle(vehicleID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	// The plate is reusable once the vehicle is gone.
	_, err = s.AddVehicle("ABC-123", "Honda", "Civic", "555-0101")
	require.NoError(t, err)

	vehicles, err := s.GetVehicles()
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	require.Equal(t, "Honda", vehicles[0].Brand)
}
