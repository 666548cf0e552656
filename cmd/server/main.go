package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Aruzhan018/Wish_Board/internal/config"
	"github.com/Aruzhan018/Wish_Board/internal/database"
	"github.com/Aruzhan018/Wish_Board/internal/handlers"
	"github.com/Aruzhan018/Wish_Board/internal/repository"
	"github.com/Aruzhan018/Wish_Board/internal/services"
	"github.com/Aruzhan018/Wish_Board/pkg/logger"
	"github.com/Aruzhan018/Wish_Board/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	client, db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	wishRepo := repository.NewWishRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	txRunner := repository.NewTxRunner(client)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	wishService := services.NewWishService(wishRepo)
	interactionService := services.NewInteractionService(wishRepo, likeRepo, txRunner)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, cfg)
	wishHandler := handlers.NewWishHandler(wishService, interactionService)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Public routes: registration, login, and catalog browsing
	router.HandleFunc("/users/register", userHandler.RegisterUserHandler).Methods("POST")
	router.HandleFunc("/users/login", userHandler.LoginUserHandler).Methods("POST")
	router.HandleFunc("/wishes", wishHandler.ListWishesHandler).Methods("GET")
	router.HandleFunc("/wishes/{id}", wishHandler.GetWishHandler).Methods("GET")

	// Protected user routes
	protectedUserRoutes := router.PathPrefix("/users").Subrouter()
	protectedUserRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedUserRoutes.HandleFunc("/{id}", userHandler.GetUserHandler).Methods("GET")

	// Protected wish routes: creating, liking, fulfilling
	protectedWishRoutes := router.PathPrefix("/wishes").Subrouter()
	protectedWishRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	protectedWishRoutes.HandleFunc("", wishHandler.CreateWishHandler).Methods("POST")
	protectedWishRoutes.HandleFunc("/{id}/like", wishHandler.ToggleLikeHandler).Methods("POST")
	protectedWishRoutes.HandleFunc("/{id}/fulfillment", wishHandler.FulfillmentHandler).Methods("PATCH")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // adjust to frontend origin
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
