package entity

import "time"

// Location representa una ubicación física dentro del almacén (estante, pasillo).
// Inmutable una vez referenciada por una línea de recepción.
type Location struct {
	ID          string
	Code        string // único: A-01, B-02...
	Description string
	CreatedAt   time.Time
}
