package userservice

// Logger интерфейс логирования для клиента UserService
type Logger interface {
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
