package get_month_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория правок расписания
type ScheduleRepository interface {
	ListOverridesByRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.CapacityOverride, error)
	ListBlocksByRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.BlockedSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
