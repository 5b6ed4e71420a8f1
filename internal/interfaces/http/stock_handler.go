package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/warehouse"
)

// StockHandler expone consultas de stock, libro de inventario y reconstrucción.
type StockHandler struct {
	uc *warehouse.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *warehouse.StockQueryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetItemStock godoc
// @Summary      Stock global y costo promedio de un artículo
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock [get]
func (h *StockHandler) GetItemStock(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetItemStock(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ItemStockResponse{ItemID: out.ItemID, Stock: out.Stock, Cost: out.Cost})
}

// GetLocationStock godoc
// @Summary      Stock de un artículo en una ubicación
// @Description  Cantidad derivada de las líneas de recepciones y despachos vivos; no hay tabla de stock por ubicación.
// @Tags         stock
// @Produce      json
// @Param        id          path  string  true  "ID del artículo"
// @Param        locationId  path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.LocationStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/stock/{locationId} [get]
func (h *StockHandler) GetLocationStock(c *fiber.Ctx) error {
	itemID := c.Params("id")
	locationID := c.Params("locationId")
	qty, err := h.uc.GetLocationStock(c.UserContext(), itemID, locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LocationStockResponse{ItemID: itemID, LocationID: locationID, Quantity: qty})
}

// ListLedger godoc
// @Summary      Libro de inventario de un artículo
// @Description  Asientos en orden cronológico ascendente, filtrables por rango de fechas (RFC 3339).
// @Tags         stock
// @Produce      json
// @Param        id    path   string  true   "ID del artículo"
// @Param        from  query  string  false  "Fecha inicial (RFC 3339)"
// @Param        to    query  string  false  "Fecha final (RFC 3339)"
// @Success      200  {array}   dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/ledger [get]
func (h *StockHandler) ListLedger(c *fiber.Ctx) error {
	id := c.Params("id")

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser RFC 3339"})
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser RFC 3339"})
		}
		to = &t
	}

	entries, err := h.uc.ListLedger(c.UserContext(), id, from, to)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LedgerEntryResponse{
			ID:                e.ID,
			ItemID:            e.ItemID,
			ActionType:        e.ActionType,
			ReferenceID:       e.ReferenceID,
			ChangeQuantity:    e.ChangeQuantity,
			NewStock:          e.NewStock,
			Timestamp:         e.Timestamp,
			TransactionPrice:  e.TransactionPrice,
			MovingAverageCost: e.MovingAverageCost,
		})
	}
	return c.JSON(out)
}

// Rebuild godoc
// @Summary      Reconstruir stock y costo desde el libro
// @Description  Reproduce los asientos del artículo y reescribe la caché materializada si difiere.
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.RebuildResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/rebuild [post]
func (h *StockHandler) Rebuild(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.RebuildProjection(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RebuildResponse{ItemID: out.ItemID, Stock: out.Stock, Cost: out.Cost, Drifted: out.Drifted})
}
