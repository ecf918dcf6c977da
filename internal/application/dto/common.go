package dto

// PageRequest paginación por número de página (current_page empieza en 1).
type PageRequest struct {
	CurrentPage int `query:"current_page" validate:"current_page"`
	PageSize    int `query:"page_size" validate:"page_size"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// FieldError error de validación asociado a un campo.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
