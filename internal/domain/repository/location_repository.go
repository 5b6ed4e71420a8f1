package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	GetByCode(code string) (*entity.Location, error)
	List() ([]*entity.Location, error)
	// IsReferenced indica si alguna línea de recepción o despacho usa la ubicación.
	IsReferenced(id string) (bool, error)
	Delete(id string) error
}
