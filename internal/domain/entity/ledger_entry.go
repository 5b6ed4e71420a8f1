package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento del libro de inventario.
const (
	ActionInbound        = "INBOUND"
	ActionInboundRevert  = "INBOUND_REVERT"
	ActionOutbound       = "OUTBOUND"
	ActionOutboundRevert = "OUTBOUND_REVERT"
)

// LedgerEntry es un asiento inmutable del libro de inventario: se inserta,
// jamás se actualiza ni se borra. El libro es la fuente de verdad;
// Item.CurrentStock y Item.CurrentCost son una caché reconstruible
// reproduciendo los asientos en orden.
type LedgerEntry struct {
	ID                string
	ItemID            string
	ActionType        string          // INBOUND, INBOUND_REVERT, OUTBOUND, OUTBOUND_REVERT
	ReferenceID       string          // recepción o despacho que originó el asiento
	ChangeQuantity    decimal.Decimal // con signo: positivo entra, negativo sale
	NewStock          decimal.Decimal // stock resultante tras aplicar el asiento
	Timestamp         time.Time
	TransactionPrice  decimal.Decimal // costo unitario en entradas, costo promedio capturado en salidas
	MovingAverageCost decimal.Decimal // costo promedio resultante (entradas y sus reversiones)
}

// IsInboundFamily indica si el asiento afecta el costo promedio (entrada o su reversión).
func (e *LedgerEntry) IsInboundFamily() bool {
	return e.ActionType == ActionInbound || e.ActionType == ActionInboundRevert
}
