package handlers

import (
	"net/http"
	"time"

	"horoscope-api/internal/dto"
	"horoscope-api/internal/utils"
)

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check returns the service liveness status
// @Summary Health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := dto.HealthResponse{
		Status:    "OK",
		Message:   "Horoscope API is running",
		Timestamp: utils.FormatTimestamp(time.Now()),
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}
