package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items. Stock y costo inician en 0 y
// solo cambian vía movimientos.
type CreateItemRequest struct {
	Code        string          `json:"code" validate:"required,max=50"`
	Name        string          `json:"name" validate:"required,max=200"`
	Unit        string          `json:"unit" validate:"max=20"`
	SafetyStock decimal.Decimal `json:"safety_stock"`
}

// UpdateItemRequest body para PUT /api/items/:id (solo datos maestros).
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	SafetyStock *decimal.Decimal `json:"safety_stock,omitempty"`
}

// ItemResponse representación de un artículo.
type ItemResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	SafetyStock  decimal.Decimal `json:"safety_stock"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	CurrentCost  decimal.Decimal `json:"current_cost"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Description string `json:"description" validate:"max=200"`
}

// LocationResponse representación de una ubicación.
type LocationResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CreatePartnerRequest body para POST /api/suppliers y /api/customers.
type CreatePartnerRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Address     string `json:"address" validate:"max=500"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
}

// PartnerResponse representación de un proveedor o cliente.
type PartnerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}
