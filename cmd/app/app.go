package app

import (
	"log"

	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/repository"
	"goblog/internal/service"
	"goblog/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection S3
	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать S3 клиент: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, s3Client)

	return db, repo, services
}
