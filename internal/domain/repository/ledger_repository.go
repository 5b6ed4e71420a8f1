package repository

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// LedgerRepository define el puerto del libro de inventario. Solo inserta y
// lee: los asientos jamás se actualizan ni se borran.
type LedgerRepository interface {
	Append(entry *entity.LedgerEntry) error
	// ListByItem devuelve los asientos de un artículo ordenados por timestamp
	// ascendente, opcionalmente acotados por rango de fechas.
	ListByItem(itemID string, from, to *time.Time) ([]*entity.LedgerEntry, error)
}
