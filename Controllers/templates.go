package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Workshop/Database"
	"Workshop/Models"
)

// TemplateController handles the service and spare part template catalog
type TemplateController struct {
	Store *Database.Store
}

// NewTemplateController creates a new TemplateController
func NewTemplateController(store *Database.Store) *TemplateController {
	return &TemplateController{Store: store}
}

// GetServiceTemplates lists service templates; ?active_only=true filters out
// deactivated entries
func (c *TemplateController) GetServiceTemplates(ctx *fiber.Ctx) error {
	activeOnly := ctx.Query("active_only") == "true"
	templates, err := c.Store.GetServiceTemplates(activeOnly)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve service templates"})
	}
	return ctx.JSON(templates)
}

// CreateServiceTemplate adds a catalog entry for a labor line item
func (c *TemplateController) CreateServiceTemplate(ctx *fiber.Ctx) error {
	var req Models.ServiceTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddServiceTemplate(req.Name, req.Description, req.DefaultPrice, req.Category)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A service template with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service template"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateServiceTemplate replaces a service template's fields
func (c *TemplateController) UpdateServiceTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	var req Models.ServiceTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateServiceTemplate(uint(id), req.Name, req.Description, req.DefaultPrice, req.Category)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A service template with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update service template"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service template not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Service template updated successfully"})
}

// DeleteServiceTemplate hard deletes a catalog entry
func (c *TemplateController) DeleteServiceTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	affected, err := c.Store.DeleteServiceTemplate(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete service template"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service template not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Service template deleted successfully"})
}

// ToggleServiceTemplate flips a template between active and inactive
func (c *TemplateController) ToggleServiceTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	affected, err := c.Store.ToggleServiceTemplateStatus(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to toggle service template"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Service template not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Service template toggled successfully"})
}

// GetServiceCategories lists the distinct service template categories
func (c *TemplateController) GetServiceCategories(ctx *fiber.Ctx) error {
	categories, err := c.Store.GetServiceCategories()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve categories"})
	}
	return ctx.JSON(categories)
}

// GetSparePartTemplates lists spare part templates
func (c *TemplateController) GetSparePartTemplates(ctx *fiber.Ctx) error {
	activeOnly := ctx.Query("active_only") == "true"
	templates, err := c.Store.GetSparePartTemplates(activeOnly)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve spare part templates"})
	}
	return ctx.JSON(templates)
}

// CreateSparePartTemplate adds a catalog entry for a part line item
func (c *TemplateController) CreateSparePartTemplate(ctx *fiber.Ctx) error {
	var req Models.SparePartTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddSparePartTemplate(req.Name, req.Description, req.DefaultPrice,
		req.Category, req.Supplier, req.PartNumber, req.CompatibleModels)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A spare part template with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create spare part template"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateSparePartTemplate replaces a spare part template's fields
func (c *TemplateController) UpdateSparePartTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	var req Models.SparePartTemplateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateSparePartTemplate(uint(id), req.Name, req.Description,
		req.DefaultPrice, req.Category, req.Supplier, req.PartNumber, req.CompatibleModels)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A spare part template with this name already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update spare part template"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part template not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Spare part template updated successfully"})
}

// DeleteSparePartTemplate hard deletes a catalog entry
func (c *TemplateController) DeleteSparePartTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	affected, err := c.Store.DeleteSparePartTemplate(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete spare part template"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part template not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Spare part template deleted successfully"})
}

// ToggleSparePartTemplate flips a template between active and inactive
func (c *TemplateController) ToggleSparePartTemplate(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid template ID"})
	}

	affected, err := c.Store.ToggleSparePartTemplateStatus(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to toggle spare part template"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part template not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Spare part template toggled successfully"})
}

// GetPartCategories lists the distinct spare part template categories
func (c *TemplateController) GetPartCategories(ctx *fiber.Ctx) error {
	categories, err := c.Store.GetPartCategories()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve categories"})
	}
	return ctx.JSON(categories)
}
