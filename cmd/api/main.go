package main

import (
	"fmt"
	"log"
	"net/http"

	"goblog/cmd/app"
	"goblog/internal/config"
	handlers "goblog/internal/handler"
	"goblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)

	mux := http.NewServeMux()

	// setting up routes
	mux.HandleFunc("/", handlers.HomeHandler)
	mux.HandleFunc("/health", handler.HealthHandler)

	mux.HandleFunc("/register", handler.Register)
	mux.HandleFunc("/login", handler.Login)
	mux.HandleFunc("/profile", handler.Profile)
	mux.HandleFunc("/logout", handler.Logout)

	mux.HandleFunc("/post", handler.Posts)
	mux.HandleFunc("/post/", handler.GetPost)

	handlerChain := middleware.Chain(
		mux,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware(cfg),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
