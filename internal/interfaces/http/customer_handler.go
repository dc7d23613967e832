package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/spares-manager/internal/application/dto"
	"github.com/jhoicas/spares-manager/internal/application/usecase"
)

const customerNotFound = "cliente no encontrado"

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers?q=acme&refresh=true
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) {
		if _, err := h.uc.Load(c.UserContext()); err != nil {
			return writeError(c, err, customerNotFound)
		}
	}
	return c.JSON(h.uc.List(c.Query("q")))
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, customerNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err, customerNotFound)
	}
	return c.JSON(out)
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, customerNotFound)
	}
	return c.JSON(out)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err, customerNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateByName PUT /api/customers/by-name/:name — reemplaza todos los homónimos.
func (h *CustomerHandler) UpdateByName(c *fiber.Ctx) error {
	name, err := param(c, "name")
	if err != nil {
		return invalidBody(c)
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateByName(c.UserContext(), name, in)
	if err != nil {
		return writeError(c, err, customerNotFound)
	}
	return c.JSON(out)
}

// DeleteByName DELETE /api/customers/by-name/:name — elimina todos los homónimos.
func (h *CustomerHandler) DeleteByName(c *fiber.Ctx) error {
	name, err := param(c, "name")
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.DeleteByName(c.UserContext(), name)
	if err != nil {
		return writeError(c, err, customerNotFound)
	}
	return c.JSON(out)
}

// Share GET /api/customers/:id/share
func (h *CustomerHandler) Share(c *fiber.Ctx) error {
	msg, err := h.uc.Share(c.Params("id"))
	if err != nil {
		return writeError(c, err, customerNotFound)
	}
	return c.JSON(msg)
}

// ShareByName GET /api/customers/by-name/:name/share — primer cliente con ese nombre.
func (h *CustomerHandler) ShareByName(c *fiber.Ctx) error {
	name, err := param(c, "name")
	if err != nil {
		return invalidBody(c)
	}
	msg, err := h.uc.ShareByName(name)
	if err != nil {
		return writeError(c, err, customerNotFound)
	}
	return c.JSON(msg)
}
