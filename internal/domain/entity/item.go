package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del almacén identificado por su SKU.
// CurrentStock y CurrentCost son proyecciones materializadas del libro de
// movimientos: solo las mutan los procesadores de transacciones, nunca el CRUD.
// CurrentCost es el costo promedio ponderado (2 decimales, inicia en 0).
type Item struct {
	ID           string
	Code         string // SKU, único
	Name         string
	Unit         string // unidad de medida: unidad, caja, kg...
	SafetyStock  decimal.Decimal
	CurrentStock decimal.Decimal
	CurrentCost  decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelowSafetyStock indica si el stock actual está por debajo del mínimo de seguridad.
func (i *Item) BelowSafetyStock() bool {
	return i.CurrentStock.LessThan(i.SafetyStock)
}
