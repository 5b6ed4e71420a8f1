package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar los
// movimientos de un mismo artículo dentro de una transacción.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	// UpdateProjection actualiza solo los campos materializados stock/costo.
	UpdateProjection(id string, stock, cost decimal.Decimal) error
	List() ([]*entity.Item, error)
	ListBelowSafetyStock() ([]*entity.Item, error)
	Delete(id string) error
}
