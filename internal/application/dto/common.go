package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MutationResponse resultado de update/delete por campo de identidad.
// Affected puede ser 0 (sin coincidencias) o >1 (nombres duplicados).
type MutationResponse struct {
	Affected int `json:"affected"`
}

// ListMeta metadatos de un listado.
type ListMeta struct {
	Query string `json:"query,omitempty"`
	Total int    `json:"total"` // tamaño de la colección completa, sin filtro
}
