package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrIrreversible      = errors.New("la recepción ya no es reversible")
)

// StockShortageError detalla un faltante de stock: qué artículo, en qué
// ubicación (vacía si el faltante es global) y por cuánto no alcanza.
// Envuelve ErrInsufficientStock para que errors.Is siga funcionando.
type StockShortageError struct {
	ItemID     string
	ItemName   string
	LocationID string
	Available  decimal.Decimal
	Requested  decimal.Decimal
}

func (e *StockShortageError) Error() string {
	if e.LocationID != "" {
		return fmt.Sprintf("stock insuficiente de %q en ubicación %s (disponible: %s, solicitado: %s)",
			e.ItemName, e.LocationID, e.Available, e.Requested)
	}
	return fmt.Sprintf("stock insuficiente de %q (disponible: %s, solicitado: %s)",
		e.ItemName, e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *StockShortageError) Unwrap() error { return ErrInsufficientStock }

// ShortBy devuelve la cantidad faltante (solicitado - disponible).
func (e *StockShortageError) ShortBy() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}
