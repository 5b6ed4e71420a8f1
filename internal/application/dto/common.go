package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ShortageResponse respuesta para faltantes de stock: indica el artículo, la
// ubicación (vacía si el faltante es global) y por cuánto no alcanza.
type ShortageResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	ItemID     string `json:"item_id"`
	ItemName   string `json:"item_name"`
	LocationID string `json:"location_id,omitempty"`
	Available  string `json:"available"`
	Requested  string `json:"requested"`
	ShortBy    string `json:"short_by"`
}
