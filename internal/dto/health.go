package dto

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Message   string `json:"message" example:"Horoscope API is running"`
	Timestamp string `json:"timestamp" example:"2025-06-01T09:00:00Z"`
}
