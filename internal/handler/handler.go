package handlers

import (
	"github.com/go-playground/validator/v10"

	"goblog/internal/config"
	"goblog/internal/database"
	"goblog/internal/repository"
	"goblog/internal/service"
)

type Handlers struct {
	AuthService service.AuthService
	PostService service.PostService
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		AuthService: service.Auth,
		PostService: service.Post,
		UserRepo:    repo.User,
		PostRepo:    repo.Post,
		DB:          db,
		Cfg:         config,
		Validate:    validator.New(),
	}
}
