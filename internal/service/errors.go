package service

import "errors"

// Виды ошибок ядра. Обработчики сопоставляют их со статусами через errors.Is.
var (
	// ErrUnauthenticated - токен отсутствует, повреждён, подпись неверна или истёк срок
	ErrUnauthenticated = errors.New("недействительный токен сессии")
	// ErrForbidden - токен валиден, но пользователь не автор поста
	ErrForbidden = errors.New("вы не являетесь автором поста")
	// ErrUpload - хранилище объектов не приняло файл
	ErrUpload = errors.New("ошибка загрузки файла в хранилище")
	// ErrInvalidCredentials - неверная пара имя/пароль при входе
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
)
