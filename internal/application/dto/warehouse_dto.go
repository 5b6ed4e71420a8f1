package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InboundLineRequest línea de una recepción.
type InboundLineRequest struct {
	ItemID     string          `json:"item_id" validate:"required"`
	LocationID string          `json:"location_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// CreateInboundRequest body para POST /api/warehouse/inbound.
type CreateInboundRequest struct {
	SupplierID string               `json:"supplier_id" validate:"required"`
	UserID     string               `json:"user_id" validate:"required"`
	Notes      string               `json:"notes"`
	Date       time.Time            `json:"date"`
	Lines      []InboundLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// OutboundLineRequest línea de un despacho.
type OutboundLineRequest struct {
	ItemID     string          `json:"item_id" validate:"required"`
	LocationID string          `json:"location_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
	SalesPrice decimal.Decimal `json:"sales_price"`
}

// CreateOutboundRequest body para POST /api/warehouse/outbound.
type CreateOutboundRequest struct {
	CustomerID string                `json:"customer_id" validate:"required"`
	UserID     string                `json:"user_id" validate:"required"`
	Notes      string                `json:"notes"`
	Date       time.Time             `json:"date"`
	Lines      []OutboundLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// ReceiptCreatedResponse respuesta al crear una recepción o despacho.
type ReceiptCreatedResponse struct {
	ReceiptID string `json:"receipt_id"`
}

// ItemStockResponse stock global y costo promedio de un artículo.
type ItemStockResponse struct {
	ItemID string          `json:"item_id"`
	Stock  decimal.Decimal `json:"stock"`
	Cost   decimal.Decimal `json:"cost"`
}

// LocationStockResponse stock derivado de un artículo en una ubicación.
type LocationStockResponse struct {
	ItemID     string          `json:"item_id"`
	LocationID string          `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// LedgerEntryResponse asiento del libro de inventario.
type LedgerEntryResponse struct {
	ID                string          `json:"id"`
	ItemID            string          `json:"item_id"`
	ActionType        string          `json:"action_type"`
	ReferenceID       string          `json:"reference_id"`
	ChangeQuantity    decimal.Decimal `json:"change_quantity"`
	NewStock          decimal.Decimal `json:"new_stock"`
	Timestamp         time.Time       `json:"timestamp"`
	TransactionPrice  decimal.Decimal `json:"transaction_price"`
	MovingAverageCost decimal.Decimal `json:"moving_average_cost"`
}

// RebuildResponse resultado de reconstruir la proyección desde el libro.
type RebuildResponse struct {
	ItemID  string          `json:"item_id"`
	Stock   decimal.Decimal `json:"stock"`
	Cost    decimal.Decimal `json:"cost"`
	Drifted bool            `json:"drifted"`
}
