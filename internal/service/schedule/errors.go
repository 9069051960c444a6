package schedule

import "errors"

var (
	// ErrAccessDenied возвращается, когда у пользователя нет прав администратора
	ErrAccessDenied = errors.New("access denied")

	// ErrOverrideNotFound возвращается, когда переопределение не найдено
	ErrOverrideNotFound = errors.New("capacity override not found")

	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("blocked slot not found")

	// ErrOverrideExists возвращается при попытке создать второе активное
	// переопределение на тот же слот
	ErrOverrideExists = errors.New("active override already exists for slot")

	// ErrHasConflicts возвращается, когда правка расписания затрагивает
	// активные записи, а флаг force не установлен
	ErrHasConflicts = errors.New("schedule change affects active bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
