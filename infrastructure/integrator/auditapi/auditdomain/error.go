package auditdomain

// ErrorResponse é o envelope de erro do backend de auditorias
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
