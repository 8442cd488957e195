package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblog/internal/models"
)

// newStubServer поднимает сервер, который ставит cookie на /login
// и требует её на /post
func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds["password"] != "secret1" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Неверное имя пользователя или пароль"})
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "token", Value: "stub-token", Path: "/"})
		json.NewEncoder(w).Encode(map[string]string{"id": "user-1", "username": creds["username"]})
	})

	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			json.NewEncoder(w).Encode([]models.Post{{PostID: "post-1", Title: "T"}})
			return
		}

		// запись требует cookie сессии
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value != "stub-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "нет сессии"})
			return
		}

		require.NoError(t, r.ParseMultipartForm(10<<20))

		post := models.Post{
			PostID:  "post-1",
			Title:   r.FormValue("title"),
			Summary: r.FormValue("summary"),
			Content: r.FormValue("content"),
		}
		if id := r.FormValue("id"); id != "" {
			post.PostID = id
		}
		if _, header, err := r.FormFile("file"); err == nil {
			post.CoverURL = "https://bucket.s3.us-east-1.amazonaws.com/1700000000000-" + header.Filename
		}

		status := http.StatusCreated
		if r.Method == http.MethodPut {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(post)
	})

	mux.HandleFunc("/post/", func(w http.ResponseWriter, r *http.Request) {
		postID := strings.TrimPrefix(r.URL.Path, "/post/")
		if postID != "post-1" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "пост не найден"})
			return
		}
		json.NewEncoder(w).Encode(models.Post{PostID: "post-1", Title: "T"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClient_LoginCarriesSession(t *testing.T) {
	server := newStubServer(t)
	ctx := context.Background()

	c, err := New(server.URL, Options{})
	require.NoError(t, err)

	t.Run("Логин сохраняет cookie, запись проходит", func(t *testing.T) {
		user, err := c.Login(ctx, "alice", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		post, err := c.CreatePost(ctx, PostDraft{
			Title:    "T",
			Summary:  "S",
			Content:  "C",
			File:     strings.NewReader("image-bytes"),
			FileName: "cover.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, "T", post.Title)
		assert.Contains(t, post.CoverURL, "cover.jpg")
	})

	t.Run("Редактирование передаёт id поста", func(t *testing.T) {
		post, err := c.EditPost(ctx, "post-7", PostDraft{Title: "T2"})

		require.NoError(t, err)
		assert.Equal(t, "post-7", post.PostID)
		assert.Equal(t, "T2", post.Title)
	})
}

func TestClient_WithoutSession(t *testing.T) {
	server := newStubServer(t)
	ctx := context.Background()

	c, err := New(server.URL, Options{})
	require.NoError(t, err)

	t.Run("Запись без логина - APIError 401", func(t *testing.T) {
		post, err := c.CreatePost(ctx, PostDraft{Title: "T"})

		assert.Nil(t, post)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "нет сессии", apiErr.Message)
	})

	t.Run("Чтение доступно без сессии", func(t *testing.T) {
		posts, err := c.RecentPosts(ctx)

		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "post-1", posts[0].PostID)
	})

	t.Run("Пост по ID", func(t *testing.T) {
		post, err := c.Post(ctx, "post-1")

		require.NoError(t, err)
		assert.Equal(t, "post-1", post.PostID)
	})

	t.Run("Несуществующий пост - APIError 404", func(t *testing.T) {
		post, err := c.Post(ctx, "missing")

		assert.Nil(t, post)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("Пустой baseURL", func(t *testing.T) {
		c, err := New("", Options{})

		assert.Nil(t, c)
		assert.Error(t, err)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		server := newStubServer(t)

		c, err := New(server.URL, Options{})
		require.NoError(t, err)

		user, err := c.Login(context.Background(), "alice", "wrong")

		assert.Nil(t, user)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	})
}
