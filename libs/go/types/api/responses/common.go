package responses

// ErrorResponse is the body of every non-2xx API response. Field names the
// rejected input when the error is a validation failure.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HealthResponse is returned by the liveness and readiness endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	TaxYear int    `json:"tax_year,omitempty"`
}
