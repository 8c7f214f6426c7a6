package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/M-harib/TaskFlow/config"
	"github.com/M-harib/TaskFlow/database"
	"github.com/M-harib/TaskFlow/middleware"
	"github.com/M-harib/TaskFlow/routes"
	"github.com/M-harib/TaskFlow/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if !cfg.AppDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize authentication service
	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Public routes
	routes.RegisterHealthRoutes(router, db)
	routes.RegisterAuthRoutes(router, db, authService)

	// Task routes require a valid token
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	routes.RegisterTaskRoutes(protected, db, services.TaskServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
