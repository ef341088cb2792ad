package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ledger-pro/internal/application/dto"
	"github.com/jhoicas/ledger-pro/internal/application/ledger"
	"github.com/jhoicas/ledger-pro/internal/domain"
	"github.com/jhoicas/ledger-pro/pkg/logger"
)

// LedgerHandler maneja los POST de los formularios del libro (add_item,
// store_purchase, store_sale). En éxito redirige al catálogo con un aviso;
// en fallo responde JSON {code, message} con el status que corresponda.
type LedgerHandler struct {
	recordPurchase *ledger.RecordPurchaseUseCase
	recordSale     *ledger.RecordSaleUseCase
	addItem        *ledger.AddItemUseCase
	log            *logger.Logger
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(
	recordPurchase *ledger.RecordPurchaseUseCase,
	recordSale *ledger.RecordSaleUseCase,
	addItem *ledger.AddItemUseCase,
	log *logger.Logger,
) *LedgerHandler {
	return &LedgerHandler{
		recordPurchase: recordPurchase,
		recordSale:     recordSale,
		addItem:        addItem,
		log:            log,
	}
}

// AddItem crea un artículo con existencias en cero y redirige al catálogo.
func (h *LedgerHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	item, err := h.addItem.ExecuteFromRequest(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("artículo creado")
	return redirectWithMsg(c, fmt.Sprintf("artículo '%s' agregado al catálogo", item.Name))
}

// StorePurchase registra una compra y redirige al catálogo con el aviso.
func (h *LedgerHandler) StorePurchase(c *fiber.Ctx) error {
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.recordPurchase.ExecuteFromRequest(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info().
		Str("purchase_id", result.PurchaseID).
		Str("company", in.Company).
		Str("product", in.Product).
		Str("total", result.Total.String()).
		Bool("new_item", result.NewItem).
		Msg("compra registrada")
	msg := "compra registrada"
	if result.NewItem {
		msg = "compra registrada (artículo nuevo en el catálogo)"
	}
	return redirectWithMsg(c, msg)
}

// StoreSale registra una venta y redirige al catálogo con el aviso.
func (h *LedgerHandler) StoreSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	result, err := h.recordSale.ExecuteFromRequest(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Info().
		Str("sale_id", result.SaleID).
		Str("company", in.Company).
		Str("product", in.Product).
		Str("total", result.Total.String()).
		Int64("remaining", result.Remaining).
		Msg("venta registrada")
	return redirectWithMsg(c, "venta registrada")
}

// fail mapea los errores de dominio a status HTTP. Los errores de
// infraestructura no se filtran al cliente.
func (h *LedgerHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrCompanyNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "empresa no encontrada"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "cantidad insuficiente"})
	default:
		h.log.Error().Err(err).Msg("operación del libro falló")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func redirectWithMsg(c *fiber.Ctx, msg string) error {
	return c.Redirect("/?msg="+url.QueryEscape(msg), fiber.StatusFound)
}
