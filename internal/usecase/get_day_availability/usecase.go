package get_day_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для расчёта доступности слотов на день
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
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
	baseSlots []types.TimeString,
	defaults domain.WeekdayCapacities,
	windowDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		baseSlots:    baseSlots,
		defaults:     defaults,
		windowDays:   windowDays,
		logger:       logger,
	}
}

// Execute выполняет расчёт доступности дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: date=%s", req.Date)

	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetDayAvailability: validation failed: %v", err)
		return nil, err
	}

	today := domain.DateOnly(uc.timeProvider.Now())

	// Загружаем записи, переопределения и блокировки на дату
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get bookings for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	overrides, err := uc.scheduleRepo.ListOverridesByRange(ctx, date, date)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get overrides for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	blocks, err := uc.scheduleRepo.ListBlocksByRange(ctx, date, date)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to get blocks for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// Дубли активных переопределений - деградация данных, не отказ
	if dups := availability.DuplicateOverrides(overrides); len(dups) > 0 {
		uc.logger.Warn("GetDayAvailability: duplicate active overrides detected: %v", dups)
	}

	day := availability.BuildDay(date, availability.DayInputs{
		Today:      today,
		WindowDays: uc.windowDays,
		BaseSlots:  uc.baseSlots,
		Defaults:   uc.defaults,
		Overrides:  overrides,
		Blocks:     blocks,
		Occupancy:  availability.AggregateBookings(bookings),
	})

	uc.logger.Info("GetDayAvailability: date=%s status=%s slots=%d", req.Date, day.DayStatus, len(day.Slots))
	return toResponse(day), nil
}

func toResponse(day domain.DayAvailability) *Response {
	resp := &Response{
		Date:   day.Date.Format(domain.DateFormat),
		Window: string(day.Window),
		Status: string(day.DayStatus),
		Slots:  make([]SlotResponse, 0, len(day.Slots)),
	}

	for _, s := range day.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			StartTime: s.StartTime.String(),
			Status:    string(s.Status),
			Capacity:  s.Capacity,
			Booked:    s.Booked,
			Remaining: s.Remaining,
		})
	}

	return resp
}
