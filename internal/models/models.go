package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// PostAuthor - автор поста в ответах API (без хеша пароля)
type PostAuthor struct {
	UserID   string `json:"userId" db:"author_id"`
	Username string `json:"username" db:"author_username"`
}

type Post struct {
	PostID    string     `json:"postId" db:"post_id"`
	AuthorID  string     `json:"authorId" db:"author_id"`
	Title     string     `json:"title" db:"title"`
	Summary   string     `json:"summary" db:"summary"`
	Content   string     `json:"content" db:"content"`
	CoverKey  *string    `json:"-" db:"cover_key"`
	CoverURL  string     `json:"cover,omitempty" db:"-"`
	Author    PostAuthor `json:"author" db:"-"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// TokenClaims - результат успешной проверки токена сессии
type TokenClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}
