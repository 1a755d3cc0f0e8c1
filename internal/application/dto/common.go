package dto

// ErrorResponse is the HTTP error body. Code is a stable machine-readable
// kind; Message is for the operator.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
