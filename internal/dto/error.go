package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Message string `json:"message,omitempty" example:"detailed error description"`
}
