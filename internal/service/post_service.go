package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
	"goblog/internal/storage"
)

type PostService interface {
	CreatePost(ctx context.Context, token string, in CreatePostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, token string, in UpdatePostInput) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	RecentPosts(ctx context.Context) ([]models.Post, error)
}

type CreatePostInput struct {
	Title    string
	Summary  string
	Content  string
	File     io.Reader
	FileName string
	FileSize int64
}

type UpdatePostInput struct {
	PostID   string
	Title    string
	Summary  string
	Content  string
	File     io.Reader
	FileName string
	FileSize int64
}

type postService struct {
	postRepo repository.PostRepository
	auth     AuthService
	storage  storage.Storage
	cfg      *config.Config
}

func NewPostService(postRepo repository.PostRepository, auth AuthService, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo: postRepo,
		auth:     auth,
		storage:  storage,
		cfg:      cfg,
	}
}

// CreatePost - рабочий процесс создания: загрузка обложки (если есть) ->
// проверка токена -> запись документа. Пост не создаётся, пока оба шага не прошли.
func (p *postService) CreatePost(ctx context.Context, token string, in CreatePostInput) (*models.Post, error) {
	coverKey, err := p.uploadCover(ctx, in.File, in.FileName, in.FileSize)
	if err != nil {
		return nil, err
	}

	claims, err := p.auth.VerifyToken(token)
	if err != nil {
		p.discardUpload(ctx, coverKey)
		return nil, err
	}

	post := &models.Post{
		AuthorID: claims.UserID,
		Title:    in.Title,
		Summary:  in.Summary,
		Content:  in.Content,
		CoverKey: coverKey,
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		p.discardUpload(ctx, coverKey)
		return nil, err
	}

	post.Author = models.PostAuthor{
		UserID:   claims.UserID,
		Username: claims.Username,
	}
	p.resolveCover(post)

	return post, nil
}

// UpdatePost - рабочий процесс редактирования: загрузка -> токен -> чтение поста ->
// проверка авторства -> частичное обновление. Обложка меняется только при новой загрузке.
func (p *postService) UpdatePost(ctx context.Context, token string, in UpdatePostInput) (*models.Post, error) {
	coverKey, err := p.uploadCover(ctx, in.File, in.FileName, in.FileSize)
	if err != nil {
		return nil, err
	}

	claims, err := p.auth.VerifyToken(token)
	if err != nil {
		p.discardUpload(ctx, coverKey)
		return nil, err
	}

	post, err := p.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		p.discardUpload(ctx, coverKey)
		return nil, err
	}

	// авторство: менять пост может только его автор
	if post.AuthorID != claims.UserID {
		p.discardUpload(ctx, coverKey)
		return nil, ErrForbidden
	}

	req := repository.UpdatePostRequest{
		PostID:   in.PostID,
		Title:    in.Title,
		Summary:  in.Summary,
		Content:  in.Content,
		CoverKey: coverKey,
	}

	if err := p.postRepo.Update(ctx, req); err != nil {
		p.discardUpload(ctx, coverKey)
		return nil, err
	}

	post.Title = in.Title
	post.Summary = in.Summary
	post.Content = in.Content
	if coverKey != nil {
		post.CoverKey = coverKey
	}
	p.resolveCover(post)

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	p.resolveCover(post)
	return post, nil
}

func (p *postService) RecentPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.GetRecent(ctx, 20)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		p.resolveCover(&posts[i])
	}

	return posts, nil
}

// uploadCover грузит файл в хранилище, возвращает nil когда файла нет
func (p *postService) uploadCover(ctx context.Context, file io.Reader, fileName string, size int64) (*string, error) {
	if file == nil {
		return nil, nil
	}

	key, err := p.storage.Upload(ctx, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return &key, nil
}

// discardUpload убирает уже загруженный объект, если последующий шаг не прошёл.
// Ошибка удаления не прерывает обработку, объект в худшем случае остаётся сиротой.
func (p *postService) discardUpload(ctx context.Context, key *string) {
	if key == nil {
		return
	}

	if err := p.storage.Delete(ctx, *key); err != nil {
		log.Printf("Предупреждение: не удалось удалить объект %s: %v", *key, err)
	}
}

// resolveCover подставляет публичный URL обложки в ответ
func (p *postService) resolveCover(post *models.Post) {
	if post.CoverKey != nil && *post.CoverKey != "" {
		post.CoverURL = p.storage.ObjectURL(*post.CoverKey)
	}
}
