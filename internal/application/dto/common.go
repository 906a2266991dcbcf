package dto

// FieldIssue detalle de un error de validación a nivel de campo.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Message    string       `json:"message"`
	Code       string       `json:"code"`
	StatusCode int          `json:"statusCode"`
	Issues     []FieldIssue `json:"issues,omitempty"`
}
