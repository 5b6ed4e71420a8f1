package entity

import "time"

// Supplier representa un proveedor que abastece el almacén.
type Supplier struct {
	ID          string
	Name        string
	Address     string
	PhoneNumber string
	CreatedAt   time.Time
}

// Customer representa un cliente destinatario de despachos.
type Customer struct {
	ID          string
	Name        string
	Address     string
	PhoneNumber string
	CreatedAt   time.Time
}
