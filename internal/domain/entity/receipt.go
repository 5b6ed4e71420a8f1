package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InboundReceipt representa una recepción de mercancía desde un proveedor.
// La cabecera y sus líneas se crean juntas y solo se eliminan vía reversión.
type InboundReceipt struct {
	ID          string
	CreatedDate time.Time
	SupplierID  string
	UserID      string // usuario que registró la recepción
	Notes       string
	Details     []InboundLine
}

// InboundLine es una línea de recepción: cantidad de un artículo que entra
// a una ubicación, con su costo unitario de adquisición.
type InboundLine struct {
	ID         string
	ReceiptID  string
	ItemID     string
	LocationID string
	Quantity   decimal.Decimal // > 0
	UnitPrice  decimal.Decimal
}

// OutboundReceipt representa un despacho de mercancía hacia un cliente.
type OutboundReceipt struct {
	ID          string
	CreatedDate time.Time
	CustomerID  string
	UserID      string
	Notes       string
	Details     []OutboundLine
}

// OutboundLine es una línea de despacho. CostPrice congela el costo promedio
// del artículo al momento de la venta, para calcular margen después
// como Quantity * (SalesPrice - CostPrice).
type OutboundLine struct {
	ID         string
	ReceiptID  string
	ItemID     string
	LocationID string
	Quantity   decimal.Decimal // > 0
	SalesPrice decimal.Decimal
	CostPrice  decimal.Decimal
}
