package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"goblog/internal/service"
)

// Posts - диспетчер для /post: список, создание и редактирование
func (h *Handlers) Posts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetPosts(w, r)
	case http.MethodPost:
		h.CreatePost(w, r)
	case http.MethodPut:
		h.UpdatePost(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	posts, err := h.PostService.RecentPosts(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// extracting the post ID from the URL
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 3 || pathParts[2] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	postID := pathParts[2]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

// multipartFile достаёт необязательный файл из формы;
// file == nil означает, что файл не передавался
func multipartFile(r *http.Request) (io.ReadCloser, string, int64, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", 0, nil
		}
		return nil, "", 0, err
	}
	return file, header.Filename, header.Size, nil
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// setting the size limit from the config
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	req := struct {
		Title   string `validate:"required"`
		Summary string
		Content string
	}{
		Title:   r.FormValue("title"),
		Summary: r.FormValue("summary"),
		Content: r.FormValue("content"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует заголовок", http.StatusBadRequest)
		return
	}

	file, fileName, fileSize, err := multipartFile(r)
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	if file != nil {
		defer file.Close()
	}

	in := service.CreatePostInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		FileName: fileName,
		FileSize: fileSize,
	}
	if file != nil {
		in.File = file
	}

	// creating a post
	post, err := h.PostService.CreatePost(r.Context(), sessionToken(r), in)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	req := struct {
		PostID  string `validate:"required"`
		Title   string `validate:"required"`
		Summary string
		Content string
	}{
		PostID:  r.FormValue("id"),
		Title:   r.FormValue("title"),
		Summary: r.FormValue("summary"),
		Content: r.FormValue("content"),
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	file, fileName, fileSize, err := multipartFile(r)
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	if file != nil {
		defer file.Close()
	}

	in := service.UpdatePostInput{
		PostID:   req.PostID,
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
		FileName: fileName,
		FileSize: fileSize,
	}
	if file != nil {
		in.File = file
	}

	// updating the post
	post, err := h.PostService.UpdatePost(r.Context(), sessionToken(r), in)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}
