package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Workshop/Database"
	"Workshop/Models"
)

// AssetController handles employee, tool and diagnostic device endpoints
type AssetController struct {
	Store *Database.Store
}

// NewAssetController creates a new AssetController
func NewAssetController(store *Database.Store) *AssetController {
	return &AssetController{Store: store}
}

func (c *AssetController) GetEmployees(ctx *fiber.Ctx) error {
	employees, err := c.Store.GetEmployees()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve employees"})
	}
	return ctx.JSON(employees)
}

func (c *AssetController) CreateEmployee(ctx *fiber.Ctx) error {
	var req Models.EmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddEmployee(req.Name, req.Description, req.NumberOfWorkingDays, req.Note, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (c *AssetController) UpdateEmployee(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	var req Models.EmployeeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateEmployee(uint(id), req.Name, req.Description, req.NumberOfWorkingDays, req.Note, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update employee"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Employee updated successfully"})
}

func (c *AssetController) DeleteEmployee(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid employee ID"})
	}

	affected, err := c.Store.DeleteEmployee(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete employee"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

func (c *AssetController) GetTools(ctx *fiber.Ctx) error {
	tools, err := c.Store.GetTools()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tools"})
	}
	return ctx.JSON(tools)
}

func (c *AssetController) CreateTool(ctx *fiber.Ctx) error {
	var req Models.AssetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddTool(req.Name, req.Description, req.Price, req.Note, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create tool"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (c *AssetController) UpdateTool(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tool ID"})
	}

	var req Models.AssetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateTool(uint(id), req.Name, req.Description, req.Price, req.Note, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update tool"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tool not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Tool updated successfully"})
}

func (c *AssetController) DeleteTool(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tool ID"})
	}

	affected, err := c.Store.DeleteTool(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete tool"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tool not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Tool deleted successfully"})
}

func (c *AssetController) GetDiagnostics(ctx *fiber.Ctx) error {
	diagnostics, err := c.Store.GetDiagnostics()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve diagnostic devices"})
	}
	return ctx.JSON(diagnostics)
}

func (c *AssetController) CreateDiagnostic(ctx *fiber.Ctx) error {
	var req Models.AssetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddDiagnostic(req.Name, req.Description, req.Price, req.Note, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create diagnostic device"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

func (c *AssetController) UpdateDiagnostic(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid diagnostic ID"})
	}

	var req Models.AssetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateDiagnostic(uint(id), req.Name, req.Description, req.Price, req.Note, req.FilePath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update diagnostic device"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Diagnostic device not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Diagnostic device updated successfully"})
}

func (c *AssetController) DeleteDiagnostic(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid diagnostic ID"})
	}

	affected, err := c.Store.DeleteDiagnostic(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete diagnostic device"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Diagnostic device not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Diagnostic device deleted successfully"})
}
