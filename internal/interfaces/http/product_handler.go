package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/spares-manager/internal/application/dto"
	"github.com/jhoicas/spares-manager/internal/application/usecase"
)

const productNotFound = "producto no encontrado"

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List GET /api/products?q=bolt&refresh=true
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if c.QueryBool("refresh", false) {
		if _, err := h.uc.Load(c.UserContext()); err != nil {
			return writeError(c, err, productNotFound)
		}
	}
	return c.JSON(h.uc.List(c.Query("q")))
}

// Create POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// Update PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateByName PUT /api/products/by-name/:name — reemplaza todos los homónimos.
func (h *ProductHandler) UpdateByName(c *fiber.Ctx) error {
	name, err := param(c, "name")
	if err != nil {
		return invalidBody(c)
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateByName(c.UserContext(), name, in)
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// DeleteByName DELETE /api/products/by-name/:name — elimina todos los homónimos.
func (h *ProductHandler) DeleteByName(c *fiber.Ctx) error {
	name, err := param(c, "name")
	if err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.DeleteByName(c.UserContext(), name)
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// Share GET /api/products/:id/share
func (h *ProductHandler) Share(c *fiber.Ctx) error {
	msg, err := h.uc.Share(c.Params("id"))
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(msg)
}

// ShareByName GET /api/products/by-name/:name/share — primer producto con ese nombre.
func (h *ProductHandler) ShareByName(c *fiber.Ctx) error {
	name, err := param(c, "name")
	if err != nil {
		return invalidBody(c)
	}
	msg, err := h.uc.ShareByName(name)
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(msg)
}
