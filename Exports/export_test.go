package Exports

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	excelizev1 "github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Workshop/Database"
	"Workshop/Models"
)

func sampleDataset() *Dataset {
	customer := Models.Customer{Name: "Maria Lopez", Phone: "555-0101", Address: "12 Elm St"}
	customer.ID = 1
	return &Dataset{
		Customers: []Models.Customer{customer},
		Vehicles: []Models.VehicleRow{
			{ID: 1, LicensePlate: "ABC-123", Brand: "Toyota", Model: "Corolla",
				CustomerPhone: "555-0101", CustomerName: "Maria Lopez"},
		},
		WorkOrders: []Models.WorkOrderRow{
			{ID: 1, EntryDate: "2026-08-20", LicensePlate: "ABC-123", CustomerName: "Maria Lopez",
				Status: "Open", PaymentStatus: "Unpaid", TotalCost: 69.99},
		},
	}
}

func TestWriteDatasetCSVSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDatasetCSV(&buf, sampleDataset()))

	content := buf.String()
	custAt := strings.Index(content, "CUSTOMERS")
	vehAt := strings.Index(content, "VEHICLES")
	woAt := strings.Index(content, "WORK ORDERS")
	require.GreaterOrEqual(t, custAt, 0)
	require.Greater(t, vehAt, custAt)
	require.Greater(t, woAt, vehAt)

	assert.Contains(t, content, "1,Maria Lopez,555-0101,12 Elm St")
	assert.Contains(t, content, "1,ABC-123,Toyota,Corolla,555-0101,Maria Lopez")
	assert.Contains(t, content, "1,2026-08-20,ABC-123,Maria Lopez,Open,Unpaid,69.99")
}

func TestBuildDatasetWorkbookSheets(t *testing.T) {
	buf, err := BuildDatasetWorkbook(sampleDataset())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Customers", "Vehicles", "Work Orders"}, f.GetSheetList())

	name, err := f.GetCellValue("Customers", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Maria Lopez", name)

	plate, err := f.GetCellValue("Work Orders", "C2")
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", plate)
}

func TestBuildStatisticsWorkbook(t *testing.T) {
	stats := &Models.RepairStatistics{
		TotalOrders:     4,
		CompletedOrders: 2,
		OpenOrders:      1,
		TotalRevenue:    850.0,
		AvgOrderValue:   212.5,
		TopServices: []Models.ServiceUsage{
			{Name: "Oil Change", UsageCount: 3, TotalQuantity: 3},
		},
		TopCustomers: []Models.CustomerActivity{
			{Name: "Maria Lopez", Phone: "555-0101", OrderCount: 2, TotalSpent: 400.0},
		},
	}
	periods := []Models.RevenuePeriod{
		{Period: "2026-08", OrderCount: 2, Revenue: 850.0, AvgOrderValue: 425.0},
	}

	buf, err := BuildStatisticsWorkbook(stats, periods)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Top Services", "Top Customers", "Revenue"}, f.GetSheetList())

	metric, err := f.GetCellValue("Summary", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Total Revenue", metric)

	period, err := f.GetCellValue("Revenue", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2026-08", period)
}

func TestImportVehicleTypes(t *testing.T) {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))
	store := Database.NewStore(db)

	// Seed one pair the file repeats
	_, err = store.AddVehicleType("Toyota", "Corolla")
	require.NoError(t, err)

	f := excelizev1.NewFile()
	f.SetCellValue("Sheet1", "A1", "Brand")
	f.SetCellValue("Sheet1", "B1", "Model")
	f.SetCellValue("Sheet1", "A2", "Toyota")
	f.SetCellValue("Sheet1", "B2", "Corolla")
	f.SetCellValue("Sheet1", "A3", "Honda")
	f.SetCellValue("Sheet1", "B3", "Civic")
	f.SetCellValue("Sheet1", "A4", "  Ford ")
	f.SetCellValue("Sheet1", "B4", " Focus ")
	f.SetCellValue("Sheet1", "A5", "")
	f.SetCellValue("Sheet1", "B5", "Orphan Model")

	path := filepath.Join(t.TempDir(), "types.xlsx")
	require.NoError(t, f.SaveAs(path))

	imported, err := ImportVehicleTypes(store, path)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	types, err := store.GetVehicleTypes()
	require.NoError(t, err)
	require.Len(t, types, 3)

	models, err := store.GetModelsByBrand("Ford")
	require.NoError(t, err)
	assert.Equal(t, []string{"Focus"}, models)
}
