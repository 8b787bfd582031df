package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"Workshop/Database"
	"Workshop/FiberConfig"
	"Workshop/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp builds a fiber app with all API routes on a fresh in-memory
// database.
func newTestApp(t *testing.T) (*fiber.App, *Database.Store) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Models.Migrate(db))

	store := Database.NewStore(db)
	app := fiber.New()
	FiberConfig.SetupRoutes(app, store)
	return app, store
}

// doJSON sends a JSON request through the app and decodes the response body.
func doJSON(t *testing.T, app *fiber.App, method, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestCreateCustomerValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/customers", Models.CustomerRequest{Phone: "555-0100"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["error"], "Name")
}

func TestCreateCustomerDuplicatePhone(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/customers", Models.CustomerRequest{Name: "Ana", Phone: "555-0100"})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "POST", "/api/customers", Models.CustomerRequest{Name: "Other Ana", Phone: "555-0100"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, body["error"], "phone")
}

func TestWorkOrderLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/customers", Models.CustomerRequest{Name: "Ana", Phone: "555-0100"})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, "POST", "/api/vehicles", Models.VehicleRequest{
		LicensePlate: "ABC-123", Brand: "Toyota", Model: "Corolla", CustomerPhone: "555-0100",
	})
	require.Equal(t, fiber.StatusCreated, status)
	vehicleID := uint(body["id"].(float64))

	status, body = doJSON(t, app, "POST", "/api/work-orders", Models.WorkOrderRequest{
		VehicleID: vehicleID, EntryDate: "2026-08-20",
	})
	require.Equal(t, fiber.StatusCreated, status)
	orderID := uint(body["id"].(float64))

	status, _ = doJSON(t, app, "POST", fmt.Sprintf("/api/work-orders/%d/services", orderID), Models.LineItemRequest{
		Name: "Oil change", Quantity: 1, Price: 49.99,
	})
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = doJSON(t, app, "POST", fmt.Sprintf("/api/work-orders/%d/spare-parts", orderID), Models.LineItemRequest{
		Name: "Oil filter", Quantity: 2, Price: 10.0,
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body = doJSON(t, app, "GET", fmt.Sprintf("/api/work-orders/%d", orderID), nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.InDelta(t, 69.99, body["total_cost"].(float64), 0.001)
	assert.Equal(t, "ABC-123", body["license_plate"])

	status, _ = doJSON(t, app, "PATCH", fmt.Sprintf("/api/work-orders/%d/status", orderID),
		fiber.Map{"status": "Completed"})
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "PATCH", fmt.Sprintf("/api/work-orders/%d/status", orderID),
		fiber.Map{"status": "Done"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "PATCH", fmt.Sprintf("/api/work-orders/%d/payment-status", orderID),
		fiber.Map{"payment_status": "Paid"})
	assert.Equal(t, fiber.StatusOK, status)
}

func TestWorkOrderNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/work-orders/9999", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Work order not found", body["error"])
}

func TestCreateInvoiceMissingOrder(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "POST", "/api/invoices", fiber.Map{"work_order_id": 42})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Work order not found", body["error"])
}

func TestInvoiceSnapshotViaAPI(t *testing.T) {
	app, store := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/customers", Models.CustomerRequest{Name: "Ana", Phone: "555-0100"})
	require.Equal(t, fiber.StatusCreated, status)
	vehicleID, err := store.AddVehicle("XYZ-789", "Honda", "Civic", "555-0100")
	require.NoError(t, err)
	orderID, err := store.AddWorkOrder(vehicleID, "2026-08-20", "")
	require.NoError(t, err)
	_, err = store.AddService(orderID, "Brake repair", "", 1, 200.0, "")
	require.NoError(t, err)

	status, body := doJSON(t, app, "POST", "/api/invoices", fiber.Map{"work_order_id": orderID})
	require.Equal(t, fiber.StatusCreated, status)
	invoiceID := uint(body["id"].(float64))

	// Later line item changes must not move the invoiced amount
	_, err = store.AddService(orderID, "Extra work", "", 1, 500.0, "")
	require.NoError(t, err)

	invoice, err := store.GetInvoiceByID(invoiceID)
	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.InDelta(t, 200.0, invoice.TotalAmount, 0.001)
}

func TestWorkOrderFilterQuery(t *testing.T) {
	app, store := newTestApp(t)

	status, _ := doJSON(t, app, "POST", "/api/customers", Models.CustomerRequest{Name: "Ana", Phone: "555-0100"})
	require.Equal(t, fiber.StatusCreated, status)
	vehicleID, err := store.AddVehicle("ABC-123", "Toyota", "Corolla", "555-0100")
	require.NoError(t, err)
	orderID, err := store.AddWorkOrder(vehicleID, "2026-08-20", "")
	require.NoError(t, err)
	_, err = store.AddService(orderID, "Oil change", "", 1, 45.0, "")
	require.NoError(t, err)
	otherID, err := store.AddWorkOrder(vehicleID, "2026-08-21", "")
	require.NoError(t, err)
	_, err = store.AddService(otherID, "Brake repair", "", 1, 180.0, "")
	require.NoError(t, err)

	status, body := doJSON(t, app, "GET", "/api/work-orders?service_type=Preventive", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = doJSON(t, app, "GET", "/api/work-orders?keyword=brake", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = doJSON(t, app, "GET", "/api/work-orders", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(2), body["count"])
}

func TestSettingsDefaultAndUpsert(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, "GET", "/api/settings/company_name?default=Fallback", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Fallback", body["value"])

	status, _ = doJSON(t, app, "PUT", "/api/settings/company_name",
		Models.SettingRequest{Key: "company_name", Value: "Downtown Garage"})
	require.Equal(t, fiber.StatusOK, status)

	status, body = doJSON(t, app, "GET", "/api/settings/company_name", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Downtown Garage", body["value"])
}

func TestStatisticsDateValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/reports/statistics?start_date=2026-01-01", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "GET", "/api/reports/statistics?start_date=bad&end_date=2026-02-01", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "GET", "/api/reports/statistics", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRevenuePeriodValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/reports/revenue?period=weekly", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestExportDatasetCSV(t *testing.T) {
	app, store := newTestApp(t)

	_, err := store.AddCustomer("Ana", "555-0100", "")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/reports/export/csv", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "CUSTOMERS")
	assert.Contains(t, content, "Ana")
}
