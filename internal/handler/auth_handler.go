package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

const sessionCookieName = "token"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserResponse struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.Cfg.TokenDuration),
		HttpOnly: true,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// sessionToken достаёт токен из cookie; пустая строка - токена нет,
// решение об отказе принимает проверка токена, а не обработчик
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// registering a user in the service
	user, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	// пароль и хеш в ответ не попадают
	response := UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	// check method
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, "Неверное имя пользователя или пароль", http.StatusBadRequest)
		return
	}

	h.setSessionCookie(w, token)

	response := UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
	}

	WriteSuccess(w, response, http.StatusOK)
}

// Profile возвращает данные из токена сессии; без валидного cookie - 401
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, err := h.AuthService.VerifyToken(sessionToken(r))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, claims, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// на сервере сессия не хранится, logout только чистит cookie клиента
	clearSessionCookie(w)

	WriteSuccess(w, MessageResponse{Message: "ok"}, http.StatusOK)
}
