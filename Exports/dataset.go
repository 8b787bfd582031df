package Exports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"Workshop/Models"
)

// Dataset bundles the rows of a full data export.
type Dataset struct {
	Customers  []Models.Customer
	Vehicles   []Models.VehicleRow
	WorkOrders []Models.WorkOrderRow
}

// WriteDatasetCSV writes one CSV with a CUSTOMERS, a VEHICLES and a WORK
// ORDERS section, each with its own header row.
func WriteDatasetCSV(w io.Writer, data *Dataset) error {
	cw := csv.NewWriter(w)

	write := func(record ...string) error {
		return cw.Write(record)
	}

	if err := write("CUSTOMERS"); err != nil {
		return err
	}
	if err := write("ID", "Name", "Phone", "Address"); err != nil {
		return err
	}
	for _, c := range data.Customers {
		if err := write(strconv.Itoa(int(c.ID)), c.Name, c.Phone, c.Address); err != nil {
			return err
		}
	}

	if err := write(); err != nil {
		return err
	}
	if err := write("VEHICLES"); err != nil {
		return err
	}
	if err := write("ID", "License Plate", "Brand", "Model", "Customer Phone", "Customer Name"); err != nil {
		return err
	}
	for _, v := range data.Vehicles {
		if err := write(strconv.Itoa(int(v.ID)), v.LicensePlate, v.Brand, v.Model, v.CustomerPhone, v.CustomerName); err != nil {
			return err
		}
	}

	if err := write(); err != nil {
		return err
	}
	if err := write("WORK ORDERS"); err != nil {
		return err
	}
	if err := write("ID", "Entry Date", "License Plate", "Customer Name", "Status", "Payment Status", "Total Cost"); err != nil {
		return err
	}
	for _, wo := range data.WorkOrders {
		if err := write(strconv.Itoa(int(wo.ID)), wo.EntryDate, wo.LicensePlate, wo.CustomerName,
			wo.Status, wo.PaymentStatus, fmt.Sprintf("%.2f", wo.TotalCost)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// BuildDatasetWorkbook builds an XLSX workbook with one sheet per entity.
func BuildDatasetWorkbook(data *Dataset) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %v", err)
	}

	customerRows := make([][]interface{}, 0, len(data.Customers))
	for _, c := range data.Customers {
		customerRows = append(customerRows, []interface{}{c.ID, c.Name, c.Phone, c.Address})
	}
	if err := writeSheet(f, "Customers", headerStyle,
		[]string{"ID", "Name", "Phone", "Address"}, customerRows); err != nil {
		return nil, err
	}

	vehicleRows := make([][]interface{}, 0, len(data.Vehicles))
	for _, v := range data.Vehicles {
		vehicleRows = append(vehicleRows, []interface{}{v.ID, v.LicensePlate, v.Brand, v.Model, v.CustomerPhone, v.CustomerName})
	}
	if err := writeSheet(f, "Vehicles", headerStyle,
		[]string{"ID", "License Plate", "Brand", "Model", "Customer Phone", "Customer Name"}, vehicleRows); err != nil {
		return nil, err
	}

	orderRows := make([][]interface{}, 0, len(data.WorkOrders))
	for _, wo := range data.WorkOrders {
		orderRows = append(orderRows, []interface{}{wo.ID, wo.EntryDate, wo.LicensePlate, wo.CustomerName,
			wo.Status, wo.PaymentStatus, wo.TotalCost})
	}
	if err := writeSheet(f, "Work Orders", headerStyle,
		[]string{"ID", "Entry Date", "License Plate", "Customer Name", "Status", "Payment Status", "Total Cost"}, orderRows); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}

// BuildStatisticsWorkbook builds an XLSX workbook from a statistics report.
func BuildStatisticsWorkbook(stats *Models.RepairStatistics, periods []Models.RevenuePeriod) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating header style: %v", err)
	}

	summaryRows := [][]interface{}{
		{"Total Orders", stats.TotalOrders},
		{"Completed Orders", stats.CompletedOrders},
		{"Open Orders", stats.OpenOrders},
		{"Total Revenue", stats.TotalRevenue},
		{"Average Order Value", stats.AvgOrderValue},
	}
	if err := writeSheet(f, "Summary", headerStyle, []string{"Metric", "Value"}, summaryRows); err != nil {
		return nil, err
	}

	serviceRows := make([][]interface{}, 0, len(stats.TopServices))
	for _, svc := range stats.TopServices {
		serviceRows = append(serviceRows, []interface{}{svc.Name, svc.UsageCount, svc.TotalQuantity})
	}
	if err := writeSheet(f, "Top Services", headerStyle,
		[]string{"Service", "Usage Count", "Total Quantity"}, serviceRows); err != nil {
		return nil, err
	}

	customerRows := make([][]interface{}, 0, len(stats.TopCustomers))
	for _, cust := range stats.TopCustomers {
		customerRows = append(customerRows, []interface{}{cust.Name, cust.Phone, cust.OrderCount, cust.TotalSpent})
	}
	if err := writeSheet(f, "Top Customers", headerStyle,
		[]string{"Customer", "Phone", "Order Count", "Total Spent"}, customerRows); err != nil {
		return nil, err
	}

	periodRows := make([][]interface{}, 0, len(periods))
	for _, p := range periods {
		periodRows = append(periodRows, []interface{}{p.Period, p.OrderCount, p.Revenue, p.AvgOrderValue})
	}
	if err := writeSheet(f, "Revenue", headerStyle,
		[]string{"Period", "Order Count", "Revenue", "Average Order Value"}, periodRows); err != nil {
		return nil, err
	}

	f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}

// writeSheet creates one sheet with a styled header row and the given rows.
func writeSheet(f *excelize.File, sheetName string, headerStyle int, headers []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetRowStyle(sheetName, 1, 1, headerStyle)

	for rowIndex, row := range rows {
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range headers {
		col := string('A' + rune(i))
		f.SetColWidth(sheetName, col, col, 18)
	}
	return nil
}
