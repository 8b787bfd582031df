package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"Workshop/Database"
	"Workshop/Models"
)

// WorkOrderController handles work order and line item API endpoints
type WorkOrderController struct {
	Store *Database.Store
}

// NewWorkOrderController creates a new WorkOrderController
func NewWorkOrderController(store *Database.Store) *WorkOrderController {
	return &WorkOrderController{Store: store}
}

// GetWorkOrders lists work orders, optionally filtered.
// GET /api/work-orders?keyword=&service_type=&status=
func (c *WorkOrderController) GetWorkOrders(ctx *fiber.Ctx) error {
	keyword := ctx.Query("keyword")
	serviceType := ctx.Query("service_type")
	status := ctx.Query("status")

	var rows []Models.WorkOrderRow
	var err error
	if keyword == "" && serviceType == "" && status == "" {
		rows, err = c.Store.GetWorkOrders()
	} else {
		rows, err = c.Store.FilterWorkOrders(keyword, serviceType, status)
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve work orders"})
	}

	return ctx.JSON(fiber.Map{
		"data":  rows,
		"count": len(rows),
	})
}

// GetWorkOrderDetails returns one order with line items and service type tags
func (c *WorkOrderController) GetWorkOrderDetails(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	details, err := c.Store.GetWorkOrderDetails(uint(id))
	if err != nil {
		if err == Models.ErrWorkOrderNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve work order"})
	}

	return ctx.JSON(details)
}

// CreateWorkOrder creates a new work order for a vehicle
func (c *WorkOrderController) CreateWorkOrder(ctx *fiber.Ctx) error {
	var req Models.WorkOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if req.EntryDate != "" {
		if _, err := time.Parse("2006-01-02", req.EntryDate); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "entry_date must be in YYYY-MM-DD format",
			})
		}
	}

	id, err := c.Store.AddWorkOrder(req.VehicleID, req.EntryDate, req.Status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create work order"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateWorkOrderStatus transitions the repair status
func (c *WorkOrderController) UpdateWorkOrderStatus(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof='Open' 'In Progress' 'Completed'"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateWorkOrderStatus(uint(id), req.Status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update status"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Status updated successfully"})
}

// UpdateWorkOrderPaymentStatus transitions the payment status
func (c *WorkOrderController) UpdateWorkOrderPaymentStatus(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	var req struct {
		PaymentStatus string `json:"payment_status" validate:"required,oneof=Unpaid Paid"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateWorkOrderPaymentStatus(uint(id), req.PaymentStatus)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment status"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Payment status updated successfully"})
}

// DeleteWorkOrder removes a work order
func (c *WorkOrderController) DeleteWorkOrder(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	affected, err := c.Store.DeleteWorkOrder(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete work order"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Work order deleted successfully"})
}

// Line item handlers. The order total is recomputed inside the store, in the
// same transaction as the write.

// GetServices lists the services billed on an order
func (c *WorkOrderController) GetServices(ctx *fiber.Ctx) error {
	orderID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	services, err := c.Store.GetServicesByWorkOrder(uint(orderID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve services"})
	}
	return ctx.JSON(services)
}

// AddService bills a service on an order
func (c *WorkOrderController) AddService(ctx *fiber.Ctx) error {
	orderID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	var req Models.LineItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	id, err := c.Store.AddService(uint(orderID), req.Name, req.Description, req.Quantity, req.Price, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add service"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateService replaces a service's fields
func (c *WorkOrderController) UpdateService(ctx *fiber.Ctx) error {
	orderID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}
	serviceID, err := strconv.Atoi(ctx.Params("serviceId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	var req Models.LineItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	affected, err := c.Store.UpdateService(uint(serviceID), uint(orderID), req.Name, req.Description, req.Quantity, req.Price, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Service updated successfully"})
}

// DeleteService removes a service from an order
func (c *WorkOrderController) DeleteService(ctx *fiber.Ctx) error {
	orderID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}
	serviceID, err := strconv.Atoi(ctx.Params("serviceId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service ID"})
	}

	affected, err := c.Store.DeleteService(uint(serviceID), uint(orderID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Service deleted successfully"})
}

// GetSpareParts lists the spare parts billed on an order
func (c *WorkOrderController) GetSpareParts(ctx *fiber.Ctx) error {
	orderID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	parts, err := c.Store.GetSparePartsByWorkOrder(uint(orderID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve spare parts"})
	}
	return ctx.JSON(parts)
}

// AddSparePart bills a spare part on an order
func (c *WorkOrderController) AddSparePart(ctx *fiber.Ctx) error {
	orderID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	var req Models.LineItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	id, err := c.Store.AddSparePart(uint(orderID), req.Name, req.Description, req.Quantity, req.Price, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add spare part"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateSparePart replaces a spare part's fields
func (c *WorkOrderController) UpdateSparePart(ctx *fiber.Ctx) error {
	orderID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}
	partID, err := strconv.Atoi(ctx.Params("partId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part ID"})
	}

	var req Models.LineItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	affected, err := c.Store.UpdateSparePart(uint(partID), uint(orderID), req.Name, req.Description, req.Quantity, req.Price, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update spare part"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Spare part updated successfully"})
}

// DeleteSparePart removes a spare part from an order
func (c *WorkOrderController) DeleteSparePart(ctx *fiber.Ctx) error {
	orderID, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}
	partID, err := strconv.Atoi(ctx.Params("partId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part ID"})
	}

	affected, err := c.Store.DeleteSparePart(uint(partID), uint(orderID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete spare part"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Spare part deleted successfully"})
}
