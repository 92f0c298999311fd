// @title Horoscope API
// @version 1.0
// @description Daily horoscope API with zodiac-based content and per-user view history

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"

	_ "horoscope-api/docs" // This is required for swagger
	"horoscope-api/internal/config"
	"horoscope-api/internal/database"
	"horoscope-api/internal/handlers"
	"horoscope-api/internal/horoscope"
	"horoscope-api/internal/metrics"
	"horoscope-api/internal/middleware"
	"horoscope-api/internal/repository"
	"horoscope-api/internal/routes"
	"horoscope-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	utils.SetProductionMode(cfg.IsProduction())

	// Apply schema migrations before accepting traffic
	if err := database.RunMigrations(cfg.GetDSN()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// ตั้งค่า pgxpool จาก config
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "horoscope-api"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// ทดสอบ ping ตอนบูต
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// --- Repositories and services ---
	userRepo := repository.NewPostgresUserRepo(pool)
	horoscopeRepo := repository.NewPostgresHoroscopeRepo(pool)
	viewRepo := repository.NewPostgresViewHistoryRepo(pool)

	generator := horoscope.NewGenerator(horoscope.DefaultTemplates(), nil)
	horoscopeService := horoscope.NewService(horoscopeRepo, viewRepo, generator, collector)

	// --- HTTP Handlers ---
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	horoscopeHandler := handlers.NewHoroscopeHandler(horoscopeService, userRepo)
	healthHandler := handlers.NewHealthHandler()

	// Setup all routes
	routes.SetupRoutes(authHandler, horoscopeHandler, healthHandler, metrics.Handler(registry), &cfg.JWT)

	// --- Middleware chain: rate limit -> CORS -> status metrics -> mux ---
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := rateLimiter.Middleware(c.Handler(collector.Middleware(http.DefaultServeMux)))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// รันเซิร์ฟเวอร์แบบ async
	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	// รอ SIGINT/SIGTERM เพื่อปิดอย่างสุภาพ
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
