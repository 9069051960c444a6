package get_month_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberService/internal/availability"
	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// UseCase use case для расчёта календарной сетки месяца
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

// Execute выполняет расчёт доступности месяца
// Данные за весь диапазон сетки загружаются тремя запросами,
// дальше расчёт идёт в памяти по дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: month=%s", req.Month)

	ref, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	today := domain.DateOnly(uc.timeProvider.Now())
	grid := availability.BuildGrid(ref, availability.ViewMonth)

	// Сетка месяца включает хвосты соседних месяцев
	rangeStart := grid[0].Date
	rangeEnd := grid[len(grid)-1].Date

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: &rangeStart,
		EndDate:   &rangeEnd,
	})
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get bookings for %s: %v", req.Month, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	overrides, err := uc.scheduleRepo.ListOverridesByRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get overrides for %s: %v", req.Month, err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	blocks, err := uc.scheduleRepo.ListBlocksByRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get blocks for %s: %v", req.Month, err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// Дубли активных переопределений - деградация данных, не отказ
	if dups := availability.DuplicateOverrides(overrides); len(dups) > 0 {
		uc.logger.Warn("GetMonthAvailability: duplicate active overrides detected: %v", dups)
	}

	occupancy := availability.AggregateBookings(bookings)

	resp := &Response{
		Month: req.Month,
		Days:  make([]DayResponse, 0, len(grid)),
	}

	for _, cell := range grid {
		day := availability.BuildDay(cell.Date, availability.DayInputs{
			Today:      today,
			WindowDays: uc.windowDays,
			BaseSlots:  uc.baseSlots,
			Defaults:   uc.defaults,
			Overrides:  overrides,
			Blocks:     blocks,
			Occupancy:  occupancy,
		})

		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, s := range day.Slots {
			slots = append(slots, SlotResponse{
				StartTime: s.StartTime.String(),
				Status:    string(s.Status),
				Capacity:  s.Capacity,
				Booked:    s.Booked,
				Remaining: s.Remaining,
			})
		}

		resp.Days = append(resp.Days, DayResponse{
			Date:         cell.Date.Format(domain.DateFormat),
			Window:       string(day.Window),
			Status:       string(day.DayStatus),
			OutsideMonth: cell.OutsideMonth,
			Slots:        slots,
		})
	}

	uc.logger.Info("GetMonthAvailability: month=%s computed %d days", req.Month, len(resp.Days))
	return resp, nil
}
