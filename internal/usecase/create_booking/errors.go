package create_booking

import "errors"

var (
	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateBeyondWindow возвращается, когда дата за пределами окна бронирования
	ErrDateBeyondWindow = errors.New("create_booking: date is beyond the booking window")

	// ErrSlotInPast возвращается при попытке записи на уже прошедший слот сегодняшнего дня
	ErrSlotInPast = errors.New("create_booking: slot already started")

	// ErrSlotBlocked возвращается, когда слот заблокирован администратором
	ErrSlotBlocked = errors.New("create_booking: slot is blocked")

	// ErrSlotNotAvailable возвращается, когда в слоте не осталось мест
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrUnknownSlot возвращается, когда время не входит в сетку слотов
	ErrUnknownSlot = errors.New("create_booking: unknown slot time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
