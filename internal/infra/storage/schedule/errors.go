package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда переопределение вместимости не найдено
	ErrOverrideNotFound = errors.New("schedule.repository: capacity override not found")

	// ErrBlockNotFound возвращается, когда блокировка слота не найдена
	ErrBlockNotFound = errors.New("schedule.repository: blocked slot not found")

	// ErrOverrideExists возвращается при попытке создать второе активное
	// переопределение на тот же слот
	ErrOverrideExists = errors.New("schedule.repository: active override already exists for slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
