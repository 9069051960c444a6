package userservice

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль клиента не найден
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что UserService недоступен и запись создаётся с именем,
	// переданным клиентом
	ErrServiceDegraded = errors.New("userservice unavailable: graceful degradation applied")
)
