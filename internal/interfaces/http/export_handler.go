package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/spares-manager/internal/application/dto"
	"github.com/jhoicas/spares-manager/internal/application/usecase"
)

// ExportHandler descarga de PDFs.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ProductCatalog GET /api/products/catalog.pdf
func (h *ExportHandler) ProductCatalog(c *fiber.Ctx) error {
	b, filename, err := h.uc.ProductCatalog(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, b, filename)
}

// CustomerDirectory GET /api/customers/directory.pdf
func (h *ExportHandler) CustomerDirectory(c *fiber.Ctx) error {
	b, filename, err := h.uc.CustomerDirectory(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendPDF(c, b, filename)
}

func sendPDF(c *fiber.Ctx, b []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(b)
}
