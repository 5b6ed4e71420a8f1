package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ReceiptRepository define el puerto de persistencia para recepciones y
// despachos (cabecera + líneas como una unidad). El stock por ubicación no
// se materializa: se deriva agregando las líneas de ambas tablas.
type ReceiptRepository interface {
	CreateInbound(receipt *entity.InboundReceipt) error
	GetInbound(id string) (*entity.InboundReceipt, error)
	DeleteInbound(id string) error

	CreateOutbound(receipt *entity.OutboundReceipt) error
	GetOutbound(id string) (*entity.OutboundReceipt, error)
	DeleteOutbound(id string) error

	// LocationStock deriva el stock de un artículo en una ubicación:
	// suma de líneas de entrada menos suma de líneas de salida en ese par.
	LocationStock(itemID, locationID string) (decimal.Decimal, error)
}
