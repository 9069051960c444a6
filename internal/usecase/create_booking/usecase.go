package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	userClient "github.com/m04kA/SMC-BarberService/internal/integrations/userservice"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	userClient   UserServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	baseSlots    []types.TimeString
	defaults     domain.WeekdayCapacities
	windowDays   int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	baseSlots []types.TimeString,
	defaults domain.WeekdayCapacities,
	windowDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		userClient:   userClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		baseSlots:    baseSlots,
		defaults:     defaults,
		windowDays:   windowDays,
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности и вставка выполняются в сериализуемой транзакции:
// выборка записей дня идёт с блокировкой строк (FOR UPDATE), поэтому две
// параллельные записи на последнее место не проходят обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, date=%s, time=%s, service=%s",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.ServiceName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	today := domain.DateOnly(now)
	date := domain.DateOnly(req.Date)

	// 2. Проверяем окно бронирования до обращения к БД
	switch availability.ClassifyWindow(date, today, uc.windowDays) {
	case domain.WindowPast:
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	case domain.WindowBeyond:
		uc.logger.Warn("CreateBooking: date %s is beyond the %d day window",
			req.Date.Format(domain.DateFormat), uc.windowDays)
		return nil, ErrDateBeyondWindow
	}

	// Для сегодняшней даты слот не должен быть уже начавшимся
	if domain.SameDate(date, today) && !types.NewTimeString(now).IsBefore(req.StartTime) {
		uc.logger.Warn("CreateBooking: slot %s already started today", req.StartTime)
		return nil, ErrSlotInPast
	}

	// 3. Разрешаем имя клиента через UserService
	// При недоступности сервиса запись создаётся с именем из запроса
	customerName := req.CustomerName
	profile, err := uc.userClient.GetProfileWithGracefulDegradation(ctx, req.UserID)
	switch {
	case err == nil:
		customerName = profile.Name
	case errors.Is(err, userClient.ErrProfileNotFound), errors.Is(err, userClient.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: profile unavailable for user=%d, using provided name", req.UserID)
	default:
		uc.logger.Error("CreateBooking: failed to get profile for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем проверку доступности и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Записи на дату с блокировкой строк (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			StartDate: &date,
			EndDate:   &date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		overrides, err := uc.scheduleRepo.ListOverridesByRange(txCtx, date, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overrides: %v", err)
			return fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
		}

		blocks, err := uc.scheduleRepo.ListBlocksByRange(txCtx, date, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		// 4.2. Пересчитываем доступность слота внутри транзакции
		day := availability.BuildDay(date, availability.DayInputs{
			Today:      today,
			WindowDays: uc.windowDays,
			BaseSlots:  uc.baseSlots,
			Defaults:   uc.defaults,
			Overrides:  overrides,
			Blocks:     blocks,
			Occupancy:  availability.AggregateBookings(bookings),
		})

		slot, found := findSlot(day, req.StartTime)
		if !found {
			uc.logger.Warn("CreateBooking: time %s is not in the slot grid for %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrUnknownSlot
		}

		switch slot.Status {
		case domain.SlotBlocked:
			uc.logger.Warn("CreateBooking: slot %s on %s is blocked", req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotBlocked
		case domain.SlotFull:
			uc.logger.Warn("CreateBooking: slot %s on %s is full, %d/%d taken",
				req.StartTime, req.Date.Format(domain.DateFormat), slot.Booked, slot.Capacity)
			return ErrSlotNotAvailable
		case domain.SlotPast:
			return ErrSlotInPast
		}

		uc.logger.Info("CreateBooking: slot %s available, %d/%d taken", req.StartTime, slot.Booked, slot.Capacity)

		// 4.3. Создаем запись
		booking := &domain.Booking{
			TicketRef:    newTicketRef(),
			CustomerID:   req.UserID,
			BookingDate:  date,
			StartTime:    req.StartTime,
			Status:       domain.StatusPending,
			CustomerName: customerName,
			ServiceName:  req.ServiceName,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d ticket=%s", result.ID, result.TicketRef)

	return &Response{
		ID:           result.ID,
		TicketRef:    result.TicketRef,
		CustomerID:   result.CustomerID,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		Status:       string(result.Status),
		CustomerName: result.CustomerName,
		ServiceName:  result.ServiceName,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// findSlot ищет слот по времени начала в рассчитанном дне
func findSlot(day domain.DayAvailability, startTime types.TimeString) (domain.SlotAvailability, bool) {
	for _, s := range day.Slots {
		if s.StartTime == startTime {
			return s, true
		}
	}
	return domain.SlotAvailability{}, false
}

// newTicketRef генерирует публичный номер талона вида "TCK-9F3A2C1D"
func newTicketRef() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "TCK-" + short
}
