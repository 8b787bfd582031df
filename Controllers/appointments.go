package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Workshop/Database"
	"Workshop/Models"
)

// AppointmentController handles appointment API endpoints
type AppointmentController struct {
	Store *Database.Store
}

// NewAppointmentController creates a new AppointmentController
func NewAppointmentController(store *Database.Store) *AppointmentController {
	return &AppointmentController{Store: store}
}

// GetAppointments lists appointments, newest first, or the ones matching ?q=
func (c *AppointmentController) GetAppointments(ctx *fiber.Ctx) error {
	var appointments []Models.Appointment
	var err error
	if term := ctx.Query("q"); term != "" {
		appointments, err = c.Store.SearchAppointments(term)
	} else {
		appointments, err = c.Store.GetAppointments()
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve appointments"})
	}
	return ctx.JSON(appointments)
}

// CreateAppointment creates a new appointment
func (c *AppointmentController) CreateAppointment(ctx *fiber.Ctx) error {
	var req Models.AppointmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddAppointment(req.Name, req.Description, req.Date)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create appointment"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateAppointment updates an existing appointment
func (c *AppointmentController) UpdateAppointment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	var req Models.AppointmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateAppointment(uint(id), req.Name, req.Description, req.Date)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update appointment"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Appointment updated successfully"})
}

// DeleteAppointment removes an appointment
func (c *AppointmentController) DeleteAppointment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	affected, err := c.Store.DeleteAppointment(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete appointment"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Appointment deleted successfully"})
}
