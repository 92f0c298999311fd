package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"horoscope-api/internal/config"
	"horoscope-api/internal/handlers"
	"horoscope-api/internal/middleware"
	"horoscope-api/internal/utils"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	horoscopeHandler *handlers.HoroscopeHandler,
	healthHandler *handlers.HealthHandler,
	metricsHandler http.Handler,
	jwtCfg *config.JWTConfig,
) {
	// Health check route
	http.HandleFunc("/health", healthHandler.Check)

	// Authentication routes
	http.HandleFunc("/api/auth/signup", authHandler.Signup)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(authHandler.Profile, jwtCfg))

	// Horoscope routes. The trailing-slash route catches /api/horoscope/:zodiacSign
	http.HandleFunc("/api/horoscope/today", middleware.AuthMiddleware(horoscopeHandler.Today, jwtCfg))
	http.HandleFunc("/api/horoscope/history", middleware.AuthMiddleware(horoscopeHandler.History, jwtCfg))
	http.HandleFunc("/api/horoscope/", horoscopeHandler.BySign)

	// Prometheus scrape endpoint
	http.Handle("/metrics", metricsHandler)

	// Swagger UI
	http.HandleFunc("/api-docs/", httpSwagger.WrapHandler)

	// Everything else is an unmatched route
	http.HandleFunc("/", notFoundHandler)
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrorResponse(w, http.StatusNotFound, "Route not found", "")
}
