package Controllers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"Workshop/Database"
	"Workshop/Exports"
)

// ReportController handles statistics and export endpoints
type ReportController struct {
	Store *Database.Store
}

// NewReportController creates a new ReportController
func NewReportController(store *Database.Store) *ReportController {
	return &ReportController{Store: store}
}

// GetStatistics returns the aggregate repair report
// GET /api/reports/statistics?start_date=&end_date=
func (c *ReportController) GetStatistics(ctx *fiber.Ctx) error {
	startDate := ctx.Query("start_date")
	endDate := ctx.Query("end_date")
	if (startDate == "") != (endDate == "") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "start_date and end_date must be given together",
		})
	}
	for _, date := range []string{startDate, endDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Dates must be in YYYY-MM-DD format",
			})
		}
	}

	stats, err := c.Store.GetRepairStatistics(startDate, endDate)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute statistics"})
	}
	return ctx.JSON(stats)
}

// GetRevenueByPeriod returns realized revenue grouped by period
// GET /api/reports/revenue?period=daily|monthly|yearly
func (c *ReportController) GetRevenueByPeriod(ctx *fiber.Ctx) error {
	period := ctx.Query("period", "monthly")
	if period != "daily" && period != "monthly" && period != "yearly" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "period must be daily, monthly or yearly",
		})
	}

	periods, err := c.Store.GetRevenueByPeriod(period)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute revenue"})
	}
	return ctx.JSON(periods)
}

// loadDataset fetches the rows of a full export.
func (c *ReportController) loadDataset() (*Exports.Dataset, error) {
	customers, err := c.Store.GetCustomers()
	if err != nil {
		return nil, err
	}
	vehicles, err := c.Store.GetVehicles()
	if err != nil {
		return nil, err
	}
	orders, err := c.Store.GetWorkOrders()
	if err != nil {
		return nil, err
	}
	return &Exports.Dataset{
		Customers:  customers,
		Vehicles:   vehicles,
		WorkOrders: orders,
	}, nil
}

// ExportDatasetCSV streams the full dataset as one sectioned CSV
// GET /api/reports/export/csv
func (c *ReportController) ExportDatasetCSV(ctx *fiber.Ctx) error {
	data, err := c.loadDataset()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dataset"})
	}

	var buf bytes.Buffer
	if err := Exports.WriteDatasetCSV(&buf, data); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build CSV"})
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("workshop_export_%s.csv", timestamp)
	ctx.Set("Content-Type", "text/csv")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Send(buf.Bytes())
}

// ExportDatasetXLSX streams the full dataset as a workbook
// GET /api/reports/export/xlsx
func (c *ReportController) ExportDatasetXLSX(ctx *fiber.Ctx) error {
	data, err := c.loadDataset()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dataset"})
	}

	buf, err := Exports.BuildDatasetWorkbook(data)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("workshop_export_%s.xlsx", timestamp)
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	return ctx.Send(buf.Bytes())
}

// ExportStatisticsXLSX streams the statistics report as a workbook
// GET /api/reports/export/statistics?start_date=&end_date=&period=
func (c *ReportController) ExportStatisticsXLSX(ctx *fiber.Ctx) error {
	stats, err := c.Store.GetRepairStatistics(ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute statistics"})
	}
	periods, err := c.Store.GetRevenueByPeriod(ctx.Query("period", "monthly"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute revenue"})
	}

	buf, err := Exports.BuildStatisticsWorkbook(stats, periods)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("repair_statistics_%s.xlsx", timestamp)
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	return ctx.Send(buf.Bytes())
}

// ImportVehicleTypes accepts an uploaded xlsx of brand/model pairs
// POST /api/vehicle-types/import (multipart, field "file")
func (c *ReportController) ImportVehicleTypes(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided. Please upload an xlsx file."})
	}
	if filepath.Ext(file.Filename) != ".xlsx" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file type. Please upload an xlsx file."})
	}

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("vehicle_types_%d.xlsx", time.Now().UnixNano()))
	if err := ctx.SaveFile(file, tempPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store uploaded file"})
	}
	defer os.Remove(tempPath)

	imported, err := Exports.ImportVehicleTypes(c.Store, tempPath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to import vehicle types"})
	}

	return ctx.JSON(fiber.Map{
		"message":  "Vehicle types imported successfully",
		"imported": imported,
	})
}
