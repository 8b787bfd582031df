package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Workshop/Config"
	"Workshop/Database"
	"Workshop/Models"
)

// InvoiceController handles invoice API endpoints
type InvoiceController struct {
	Store *Database.Store
}

// NewInvoiceController creates a new InvoiceController
func NewInvoiceController(store *Database.Store) *InvoiceController {
	return &InvoiceController{Store: store}
}

// GetInvoices retrieves all invoices with order, vehicle and customer info
func (c *InvoiceController) GetInvoices(ctx *fiber.Ctx) error {
	invoices, err := c.Store.GetInvoices()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve invoices"})
	}
	return ctx.JSON(fiber.Map{
		"data":  invoices,
		"count": len(invoices),
	})
}

// CreateInvoice issues an invoice snapshotting a work order's current total
func (c *InvoiceController) CreateInvoice(ctx *fiber.Ctx) error {
	var req struct {
		WorkOrderID uint `json:"work_order_id" validate:"required"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.CreateInvoice(req.WorkOrderID)
	if err != nil {
		if err == Models.ErrWorkOrderNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create invoice"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateInvoiceStatus marks an invoice paid or unpaid
func (c *InvoiceController) UpdateInvoiceStatus(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=Unpaid Paid"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateInvoiceStatus(uint(id), req.Status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update invoice"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Invoice updated successfully"})
}

// PrintInvoice renders the invoice print view
// GET /invoices/:id/print
func (c *InvoiceController) PrintInvoice(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invoice ID"})
	}

	invoice, err := c.Store.GetInvoiceByID(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve invoice"})
	}
	if invoice == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invoice not found"})
	}

	details, err := c.Store.GetWorkOrderDetails(invoice.WorkOrderID)
	if err != nil && err != Models.ErrWorkOrderNotFound {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve work order"})
	}

	companyName, _ := c.Store.GetSetting("company_name", Config.DefaultCompanyName)

	data := fiber.Map{
		"CompanyName": companyName,
		"Invoice":     invoice,
	}
	if details != nil {
		data["Services"] = details.Services
		data["SpareParts"] = details.SpareParts
	}

	return ctx.Render("invoice", data)
}
