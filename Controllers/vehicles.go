package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Workshop/Database"
	"Workshop/Models"
)

// VehicleController handles vehicle and vehicle type API endpoints
type VehicleController struct {
	Store *Database.Store
}

// NewVehicleController creates a new VehicleController
func NewVehicleController(store *Database.Store) *VehicleController {
	return &VehicleController{Store: store}
}

// GetVehicles retrieves all vehicles with owner names, or the ones matching ?q=
func (c *VehicleController) GetVehicles(ctx *fiber.Ctx) error {
	var vehicles []Models.VehicleRow
	var err error
	if term := ctx.Query("q"); term != "" {
		vehicles, err = c.Store.SearchVehicles(term)
	} else {
		vehicles, err = c.Store.GetVehicles()
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicles"})
	}
	return ctx.JSON(vehicles)
}

// CreateVehicle creates a new vehicle
func (c *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {
	var req Models.VehicleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddVehicle(req.LicensePlate, req.Brand, req.Model, req.CustomerPhone)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A vehicle with this license plate already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vehicle"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateVehicle updates an existing vehicle
func (c *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var req Models.VehicleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateVehicle(uint(id), req.LicensePlate, req.Brand, req.Model, req.CustomerPhone)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A vehicle with this license plate already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicle"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Vehicle updated successfully"})
}

// DeleteVehicle removes a vehicle. Its work orders are kept and drop out of
// joined listings.
func (c *VehicleController) DeleteVehicle(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	affected, err := c.Store.DeleteVehicle(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete vehicle"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}

// GetVehicleTypes retrieves the brand/model catalog
func (c *VehicleController) GetVehicleTypes(ctx *fiber.Ctx) error {
	types, err := c.Store.GetVehicleTypes()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicle types"})
	}
	return ctx.JSON(types)
}

// CreateVehicleType adds a brand/model pair
func (c *VehicleController) CreateVehicleType(ctx *fiber.Ctx) error {
	var req Models.VehicleTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddVehicleType(req.Brand, req.Model)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "This brand and model pair already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create vehicle type"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateVehicleType updates a brand/model pair
func (c *VehicleController) UpdateVehicleType(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle type ID"})
	}

	var req Models.VehicleTypeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateVehicleType(uint(id), req.Brand, req.Model)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicle type"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle type not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Vehicle type updated successfully"})
}

// DeleteVehicleType removes a brand/model pair
func (c *VehicleController) DeleteVehicleType(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle type ID"})
	}

	affected, err := c.Store.DeleteVehicleType(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete vehicle type"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle type not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Vehicle type deleted successfully"})
}

// GetBrands lists distinct brands for the brand dropdown
func (c *VehicleController) GetBrands(ctx *fiber.Ctx) error {
	brands, err := c.Store.GetBrands()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve brands"})
	}
	return ctx.JSON(brands)
}

// GetModelsByBrand lists models for the dependent model dropdown
func (c *VehicleController) GetModelsByBrand(ctx *fiber.Ctx) error {
	models, err := c.Store.GetModelsByBrand(ctx.Params("brand"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve models"})
	}
	return ctx.JSON(models)
}
