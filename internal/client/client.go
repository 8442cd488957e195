package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"goblog/internal/models"
)

const defaultTimeout = 15 * time.Second

// Client - тонкий типизированный клиент API блога.
// Cookie сессии хранится в jar, поэтому Login достаточно вызвать один раз.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// Options позволяет переопределить зависимости клиента
type Options struct {
	HTTPClient *http.Client
}

func New(baseURL string, opts Options) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse baseURL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	return &Client{baseURL: parsed, httpClient: httpClient}, nil
}

// APIError - ошибка, возвращённая сервером
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// UserInfo - ответ register/login
type UserInfo struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// PostDraft - содержимое поста для создания/редактирования, файл необязателен
type PostDraft struct {
	Title    string
	Summary  string
	Content  string
	File     io.Reader
	FileName string
}

func (c *Client) Register(ctx context.Context, username, password string) (*UserInfo, error) {
	var user UserInfo
	err := c.doJSON(ctx, http.MethodPost, "/register",
		map[string]string{"username": username, "password": password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*UserInfo, error) {
	var user UserInfo
	err := c.doJSON(ctx, http.MethodPost, "/login",
		map[string]string{"username": username, "password": password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/logout", nil, nil)
}

func (c *Client) Profile(ctx context.Context) (*models.TokenClaims, error) {
	var claims models.TokenClaims
	err := c.doJSON(ctx, http.MethodGet, "/profile", nil, &claims)
	if err != nil {
		return nil, err
	}
	return &claims, nil
}

func (c *Client) CreatePost(ctx context.Context, draft PostDraft) (*models.Post, error) {
	return c.sendPostForm(ctx, http.MethodPost, "", draft)
}

func (c *Client) EditPost(ctx context.Context, postID string, draft PostDraft) (*models.Post, error) {
	return c.sendPostForm(ctx, http.MethodPut, postID, draft)
}

func (c *Client) RecentPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := c.doJSON(ctx, http.MethodGet, "/post", nil, &posts)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) Post(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	err := c.doJSON(ctx, http.MethodGet, "/post/"+postID, nil, &post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// sendPostForm собирает multipart форму поста; postID != "" означает редактирование
func (c *Client) sendPostForm(ctx context.Context, method, postID string, draft PostDraft) (*models.Post, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	fields := map[string]string{
		"title":   draft.Title,
		"summary": draft.Summary,
		"content": draft.Content,
	}
	if postID != "" {
		fields["id"] = postID
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if draft.File != nil {
		part, err := form.CreateFormFile("file", draft.FileName)
		if err != nil {
			return nil, fmt.Errorf("create form file: %w", err)
		}
		if _, err := io.Copy(part, draft.File); err != nil {
			return nil, fmt.Errorf("copy file: %w", err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	req, err := c.newRequest(ctx, method, "/post", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var post models.Post
	if err := c.send(req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
