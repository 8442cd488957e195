package repository

import (
	"context"
	"errors"

	"goblog/internal/models"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound - запись с таким идентификатором отсутствует
	ErrNotFound = errors.New("запись не найдена")
	// ErrUsernameTaken - имя пользователя уже занято
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	GetRecent(ctx context.Context, limit int) ([]models.Post, error)
	Update(ctx context.Context, req UpdatePostRequest) error
}

type Repository struct {
	User UserRepository
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		Post: NewPostRepository(db),
	}
}
