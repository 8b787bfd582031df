package Database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultAndUpsert(t *testing.T) {
	s := newTestStore(t)

	value, err := s.GetSetting("company_name", "Auto Repair Shop")
	require.NoError(t, err)
	assert.Equal(t, "Auto Repair Shop", value)

	require.NoError(t, s.SetSetting("company_name", "Lopez Garage"))
	value, err = s.GetSetting("company_name", "Auto Repair Shop")
	require.NoError(t, err)
	assert.Equal(t, "Lopez Garage", value)

	// Setting the same key again replaces the value.
	require.NoError(t, s.SetSetting("company_name", "Lopez Garage & Sons"))
	value, err = s.GetSetting("company_name", "")
	require.NoError(t, err)
	assert.Equal(t, "Lopez Garage & Sons", value)
}

func TestAppointmentRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddAppointment("Brake check", "call ahead", "2026-09-01 10:00")
	require.NoError(t, err)
	_, err = s.AddAppointment("Oil change", "", "2026-09-02 09:00")
	require.NoError(t, err)

	appointments, err := s.GetAppointments()
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, "Oil change", appointments[0].Name) // newest first

	found, err := s.SearchAppointments("Brake")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].ID)

	byDate, err := s.GetAppointmentsByDate("2026-09-01")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, "Brake check", byDate[0].Name)

	affected, err := s.UpdateAppointment(id, "Brake check", "", "2026-09-03 10:00")
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	affected, err = s.DeleteAppointment(id)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
}

func TestAssetCRUD(t *testing.T) {
	s := newTestStore(t)

	empID, err := s.AddEmployee("Sam Carter", "mechanic", 22, "", "")
	require.NoError(t, err)
	toolID, err := s.AddTool("Impact Wrench", "", 350, "", "")
	require.NoError(t, err)
	diagID, err := s.AddDiagnostic("OBD Scanner", "", 600, "", "")
	require.NoError(t, err)

	employees, err := s.GetEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, 22, employees[0].NumberOfWorkingDays)

	affected, err := s.UpdateTool(toolID, "Impact Wrench", "1/2 inch", 375, "calibrated", "")
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	tools, err := s.GetTools()
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.InDelta(t, 375.0, tools[0].Price, 1e-9)

	affected, err = s.DeleteDiagnostic(diagID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	diagnostics, err := s.GetDiagnostics()
	require.NoError(t, err)
	require.Empty(t, diagnostics)

	affected, err = s.DeleteEmployee(empID)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
}
