package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// ScheduleRepository интерфейс репозитория правок расписания
type ScheduleRepository interface {
	CreateOverride(ctx context.Context, override *domain.CapacityOverride) (*domain.CapacityOverride, error)
	GetOverrideByID(ctx context.Context, id int64) (*domain.CapacityOverride, error)
	DeactivateOverride(ctx context.Context, id int64) error
	ListOverridesByRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.CapacityOverride, error)
	CreateBlock(ctx context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error)
	GetBlockByID(ctx context.Context, id int64) (*domain.BlockedSlot, error)
	DeleteBlock(ctx context.Context, id int64) error
	ListBlocksByRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.BlockedSlot, error)
	FindBlock(ctx context.Context, date time.Time, slot types.TimeString) (*domain.BlockedSlot, error)
}

// BookingRepository интерфейс репозитория записей
// Нужен для поиска записей, затронутых правкой расписания
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// AdminChecker проверка прав администратора
type AdminChecker interface {
	IsAdmin(userID int64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
