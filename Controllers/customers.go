package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Workshop/Database"
	"Workshop/Models"
)

// CustomerController handles customer API endpoints
type CustomerController struct {
	Store *Database.Store
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(store *Database.Store) *CustomerController {
	return &CustomerController{Store: store}
}

// GetCustomers retrieves all customers, or the ones matching ?q=
func (c *CustomerController) GetCustomers(ctx *fiber.Ctx) error {
	var customers []Models.Customer
	var err error
	if term := ctx.Query("q"); term != "" {
		customers, err = c.Store.SearchCustomers(term)
	} else {
		customers, err = c.Store.GetCustomers()
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve customers"})
	}
	return ctx.JSON(customers)
}

// CreateCustomer creates a new customer
func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var req Models.CustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	id, err := c.Store.AddCustomer(req.Name, req.Phone, req.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A customer with this phone number already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create customer"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// UpdateCustomer updates an existing customer
func (c *CustomerController) UpdateCustomer(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var req Models.CustomerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if msg := validateRequest(req); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
	}

	affected, err := c.Store.UpdateCustomer(uint(id), req.Name, req.Phone, req.Address)
	if err != nil {
		if isUniqueViolation(err) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A customer with this phone number already exists",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update customer"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Customer updated successfully"})
}

// DeleteCustomer removes a customer. Their vehicles are kept and simply drop
// out of joined listings.
func (c *CustomerController) DeleteCustomer(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	affected, err := c.Store.DeleteCustomer(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete customer"})
	}
	if affected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	return ctx.JSON(fiber.Map{"message": "Customer deleted successfully"})
}
