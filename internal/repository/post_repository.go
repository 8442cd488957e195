package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"goblog/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

// UpdatePostRequest - частичное обновление: title/summary/content перезаписываются,
// cover_key меняется только если CoverKey != nil, author_id не меняется никогда
type UpdatePostRequest struct {
	PostID   string  `db:"post_id"`
	Title    string  `db:"title"`
	Summary  string  `db:"summary"`
	Content  string  `db:"content"`
	CoverKey *string `db:"cover_key"`
}

// postRow - строка выборки с присоединённым именем автора
type postRow struct {
	models.Post
	AuthorUsername string `db:"author_username"`
}

func (row *postRow) toPost() models.Post {
	post := row.Post
	post.Author = models.PostAuthor{
		UserID:   row.AuthorID,
		Username: row.AuthorUsername,
	}
	return post
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, author_id, title, summary, content, cover_key, created_at)
        VALUES
        (:post_id, :author_id, :title, :summary, :content, :cover_key, :created_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	post.CreatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT p.post_id, p.author_id, p.title, p.summary, p.content, p.cover_key, p.created_at,
               u.username AS author_username
        FROM posts p
        JOIN users u ON u.user_id = p.author_id
        WHERE p.post_id = $1
    `

	var row postRow
	err := r.db.GetContext(ctx, &row, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	post := row.toPost()
	return &post, nil
}

func (r *PostRepositoryImpl) GetRecent(ctx context.Context, limit int) ([]models.Post, error) {
	if limit < 1 || limit > 20 {
		limit = 20
	}

	query := `
        SELECT p.post_id, p.author_id, p.title, p.summary, p.content, p.cover_key, p.created_at,
               u.username AS author_username
        FROM posts p
        JOIN users u ON u.user_id = p.author_id
        ORDER BY p.created_at DESC
        LIMIT $1
    `

	var rows []postRow
	err := r.db.SelectContext(ctx, &rows, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	posts := make([]models.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].toPost())
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, req UpdatePostRequest) error {
	query := `
		UPDATE posts SET
			title = :title,
			summary = :summary,
			content = :content,
			cover_key = COALESCE(:cover_key, cover_key)
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, req)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", req.PostID, ErrNotFound)
	}

	return nil
}
