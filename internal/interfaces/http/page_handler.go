package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ledger-pro/internal/application/dto"
	"github.com/jhoicas/ledger-pro/internal/application/usecase"
)

// PageHandler renderiza las páginas HTML (catálogo y formularios de compra/venta).
type PageHandler struct {
	catalogUC *usecase.CatalogUseCase
	companyUC *usecase.CompanyUseCase
}

// NewPageHandler construye el handler.
func NewPageHandler(catalogUC *usecase.CatalogUseCase, companyUC *usecase.CompanyUseCase) *PageHandler {
	return &PageHandler{catalogUC: catalogUC, companyUC: companyUC}
}

// Index renderiza el catálogo. El query param msg lleva el aviso de un solo
// uso que dejan los redirects de los formularios.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	items, err := h.catalogUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo cargar el catálogo"})
	}
	return c.Render("index", fiber.Map{
		"Items": items,
		"Msg":   c.Query("msg"),
	})
}

// PurchaseForm renderiza el formulario de compra con las empresas disponibles.
func (h *PageHandler) PurchaseForm(c *fiber.Ctx) error {
	return h.renderForm(c, "purchase")
}

// SaleForm renderiza el formulario de venta con las empresas disponibles.
func (h *PageHandler) SaleForm(c *fiber.Ctx) error {
	return h.renderForm(c, "sale")
}

func (h *PageHandler) renderForm(c *fiber.Ctx, view string) error {
	companies, err := h.companyUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron cargar las empresas"})
	}
	return c.Render(view, fiber.Map{"Companies": companies})
}
