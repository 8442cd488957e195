package service

import (
	"goblog/internal/config"
	"goblog/internal/repository"
	"goblog/internal/storage"
)

type Service struct {
	Auth AuthService
	Post PostService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	auth := NewAuthService(rep.User, cfg)

	return &Service{
		Auth: auth,
		Post: NewPostService(rep.Post, auth, storage, cfg),
	}
}
