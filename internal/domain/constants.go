package domain

// Default configuration values
const (
	DefaultBookingWindowDays       = 30
	DefaultCancellationCutoffHours = 3
)

// Business validation constants
const (
	MinSlotCapacity             = 0
	MaxSlotCapacity             = 20
	MinBookingWindowDays        = 1
	MaxBookingWindowDays        = 365
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBlockReasonLength        = 200
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// ActiveStatuses список статусов, занимающих место в слоте
// Используется при подсчёте занятости слотов
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список терминальных статусов
// Не учитываются при подсчёте доступных мест
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
