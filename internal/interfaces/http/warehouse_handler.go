package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/warehouse"
)

// WarehouseHandler maneja recepciones, despachos y sus reversiones.
type WarehouseHandler struct {
	txUC  *warehouse.TransactionUseCase
	revUC *warehouse.ReversalUseCase
	docUC *document.UseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(txUC *warehouse.TransactionUseCase, revUC *warehouse.ReversalUseCase, docUC *document.UseCase) *WarehouseHandler {
	return &WarehouseHandler{txUC: txUC, revUC: revUC, docUC: docUC}
}

// CreateInbound godoc
// @Summary      Registrar recepción de mercancía
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInboundRequest  true  "Recepción con líneas"
// @Success      201   {object}  dto.ReceiptCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse/inbound [post]
func (h *WarehouseHandler) CreateInbound(c *fiber.Ctx) error {
	var in dto.CreateInboundRequest
	if !parseBody(c, &in) {
		return nil
	}

	input := warehouse.InboundInput{
		SupplierID: in.SupplierID,
		UserID:     in.UserID,
		Notes:      in.Notes,
		Date:       in.Date,
	}
	for _, l := range in.Lines {
		input.Lines = append(input.Lines, warehouse.InboundLineInput{
			ItemID:     l.ItemID,
			LocationID: l.LocationID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
		})
	}

	id, err := h.txUC.CreateInbound(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReceiptCreatedResponse{ReceiptID: id})
}

// CreateOutbound godoc
// @Summary      Registrar despacho de mercancía
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutboundRequest  true  "Despacho con líneas"
// @Success      201   {object}  dto.ReceiptCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ShortageResponse
// @Router       /api/warehouse/outbound [post]
func (h *WarehouseHandler) CreateOutbound(c *fiber.Ctx) error {
	var in dto.CreateOutboundRequest
	if !parseBody(c, &in) {
		return nil
	}

	input := warehouse.OutboundInput{
		CustomerID: in.CustomerID,
		UserID:     in.UserID,
		Notes:      in.Notes,
		Date:       in.Date,
	}
	for _, l := range in.Lines {
		input.Lines = append(input.Lines, warehouse.OutboundLineInput{
			ItemID:     l.ItemID,
			LocationID: l.LocationID,
			Quantity:   l.Quantity,
			SalesPrice: l.SalesPrice,
		})
	}

	id, err := h.txUC.CreateOutbound(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ReceiptCreatedResponse{ReceiptID: id})
}

// RevertInbound godoc
// @Summary      Revertir una recepción
// @Description  Deshace stock y costo promedio de cada línea y elimina la recepción. Falla con 409 si el stock actual no alcanza para retirar lo recibido.
// @Tags         warehouse
// @Produce      json
// @Param        id   path  string  true  "ID de la recepción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/warehouse/inbound/{id} [delete]
func (h *WarehouseHandler) RevertInbound(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.revUC.RevertInbound(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RevertOutbound godoc
// @Summary      Revertir un despacho
// @Description  Devuelve al stock las cantidades despachadas al costo congelado en cada línea y elimina el despacho.
// @Tags         warehouse
// @Produce      json
// @Param        id   path  string  true  "ID del despacho"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/outbound/{id} [delete]
func (h *WarehouseHandler) RevertOutbound(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.revUC.RevertOutbound(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// InboundPDF godoc
// @Summary      Comprobante PDF de una recepción
// @Tags         warehouse
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la recepción"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/inbound/{id}/pdf [get]
func (h *WarehouseHandler) InboundPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.docUC.InboundPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

// OutboundPDF godoc
// @Summary      Comprobante PDF de un despacho
// @Tags         warehouse
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del despacho"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/outbound/{id}/pdf [get]
func (h *WarehouseHandler) OutboundPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.docUC.OutboundPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
