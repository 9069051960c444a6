package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Service сервис управления расписанием барбершопа.
// Все операции доступны только администраторам. Правки, затрагивающие
// активные записи, отклоняются без флага force - администратор видит
// список конфликтов и принимает решение явно
type Service struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	admins       AdminChecker
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	admins AdminChecker,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		admins:       admins,
		logger:       logger,
	}
}

// CreateBlock блокирует слот или весь день
// Без флага force отклоняет блокировку, затрагивающую активные записи
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: date=%s, startTime=%v, force=%v by user=%d",
		req.Date, req.StartTime, req.Force, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("CreateBlock: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	date, slot, err := parseDateAndSlot(req.Date, req.StartTime)
	if err != nil {
		s.logger.Warn("CreateBlock: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Проверяем затронутые записи
	conflicts, err := s.findConflicts(ctx, date, slot)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 && !req.Force {
		s.logger.Warn("CreateBlock: %d active bookings affected on %s, force not set", len(conflicts), req.Date)
		return nil, fmt.Errorf("%w: %d bookings affected", ErrHasConflicts, len(conflicts))
	}

	block := &domain.BlockedSlot{
		Date:      date,
		StartTime: slot,
		Reason:    req.Reason,
	}

	created, err := s.scheduleRepo.CreateBlock(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlock: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: successfully created block id=%d on %s (affected=%d)",
		created.ID, req.Date, len(conflicts))
	return models.FromDomainBlock(created), nil
}

// DeleteBlock снимает блокировку
func (s *Service) DeleteBlock(ctx context.Context, req *models.DeleteBlockRequest) error {
	s.logger.Info("DeleteBlock: block id=%d by user=%d", req.BlockID, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("DeleteBlock: access denied for user=%d", req.UserID)
		return ErrAccessDenied
	}

	block, err := s.scheduleRepo.GetBlockByID(ctx, req.BlockID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", req.BlockID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block id=%d: %v", req.BlockID, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	if err := s.scheduleRepo.DeleteBlock(ctx, req.BlockID); err != nil {
		if errors.Is(err, scheduleRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", req.BlockID)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block id=%d: %v", req.BlockID, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: successfully deleted block id=%d on %s", req.BlockID, block.Date.Format(domain.DateFormat))
	return nil
}

// CreateOverride создает переопределение вместимости слота
// Без флага force отклоняет снижение вместимости ниже текущего числа
// активных записей. Второе активное переопределение на тот же слот
// не допускается
func (s *Service) CreateOverride(ctx context.Context, req *models.CreateOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("CreateOverride: date=%s, startTime=%s, capacity=%d, force=%v by user=%d",
		req.Date, req.StartTime, req.Capacity, req.Force, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("CreateOverride: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	startTime := req.StartTime
	date, slot, err := parseDateAndSlot(req.Date, &startTime)
	if err != nil {
		s.logger.Warn("CreateOverride: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Capacity < domain.MinSlotCapacity || req.Capacity > domain.MaxSlotCapacity {
		s.logger.Warn("CreateOverride: capacity=%d out of bounds", req.Capacity)
		return nil, fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}

	// Блокировка всегда сильнее переопределения: переопределение на
	// заблокированный слот не вступит в силу, пока блокировка не снята
	if block, err := s.scheduleRepo.FindBlock(ctx, date, *slot); err == nil {
		s.logger.Warn("CreateOverride: slot %s %s is covered by block id=%d, override will stay dormant until the block is removed",
			req.Date, req.StartTime, block.ID)
	} else if !errors.Is(err, scheduleRepo.ErrBlockNotFound) {
		s.logger.Error("CreateOverride: repository error checking blocks for %s %s: %v", req.Date, req.StartTime, err)
		return nil, fmt.Errorf("%w: CreateOverride - repository error: %v", ErrInternal, err)
	}

	// Снижение вместимости ниже текущей занятости требует force
	conflicts, err := s.findConflicts(ctx, date, slot)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > req.Capacity && !req.Force {
		s.logger.Warn("CreateOverride: %d active bookings exceed new capacity=%d on %s %s, force not set",
			len(conflicts), req.Capacity, req.Date, req.StartTime)
		return nil, fmt.Errorf("%w: %d bookings exceed new capacity", ErrHasConflicts, len(conflicts))
	}

	override := &domain.CapacityOverride{
		Date:      date,
		StartTime: *slot,
		Capacity:  req.Capacity,
	}

	created, err := s.scheduleRepo.CreateOverride(ctx, override)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideExists) {
			s.logger.Warn("CreateOverride: active override already exists for %s %s", req.Date, req.StartTime)
			return nil, ErrOverrideExists
		}
		s.logger.Error("CreateOverride: repository error for %s %s: %v", req.Date, req.StartTime, err)
		return nil, fmt.Errorf("%w: CreateOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateOverride: successfully created override id=%d for %s %s capacity=%d",
		created.ID, req.Date, req.StartTime, req.Capacity)
	return models.FromDomainOverride(created), nil
}

// DeactivateOverride деактивирует переопределение вместимости
func (s *Service) DeactivateOverride(ctx context.Context, req *models.DeactivateOverrideRequest) error {
	s.logger.Info("DeactivateOverride: override id=%d by user=%d", req.OverrideID, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("DeactivateOverride: access denied for user=%d", req.UserID)
		return ErrAccessDenied
	}

	override, err := s.scheduleRepo.GetOverrideByID(ctx, req.OverrideID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeactivateOverride: override id=%d not found", req.OverrideID)
			return ErrOverrideNotFound
		}
		s.logger.Error("DeactivateOverride: repository error for override id=%d: %v", req.OverrideID, err)
		return fmt.Errorf("%w: DeactivateOverride - repository error: %v", ErrInternal, err)
	}

	if !override.Active {
		s.logger.Warn("DeactivateOverride: override id=%d is already inactive", req.OverrideID)
		return ErrOverrideNotFound
	}

	if err := s.scheduleRepo.DeactivateOverride(ctx, req.OverrideID); err != nil {
		if errors.Is(err, scheduleRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeactivateOverride: override id=%d not found or already inactive", req.OverrideID)
			return ErrOverrideNotFound
		}
		s.logger.Error("DeactivateOverride: repository error for override id=%d: %v", req.OverrideID, err)
		return fmt.Errorf("%w: DeactivateOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateOverride: successfully deactivated override id=%d (%s %s)",
		req.OverrideID, override.Date.Format(domain.DateFormat), override.StartTime)
	return nil
}

// CheckConflicts возвращает активные записи, которые затронет блокировка
// слота или дня. Используется админкой перед подтверждением правки
func (s *Service) CheckConflicts(ctx context.Context, req *models.CheckConflictsRequest) (*models.ConflictsResponse, error) {
	s.logger.Info("CheckConflicts: date=%s, startTime=%v by user=%d", req.Date, req.StartTime, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("CheckConflicts: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	date, slot, err := parseDateAndSlot(req.Date, req.StartTime)
	if err != nil {
		s.logger.Warn("CheckConflicts: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	conflicts, err := s.findConflicts(ctx, date, slot)
	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckConflicts: found %d affected bookings on %s", len(conflicts), req.Date)
	return &models.ConflictsResponse{
		Date:      req.Date,
		StartTime: req.StartTime,
		Count:     len(conflicts),
		Conflicts: models.FromDomainConflicts(conflicts),
	}, nil
}

// GetSchedule возвращает правки расписания за период:
// активные переопределения вместимости и блокировки
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: period=%s..%s by user=%d", req.StartDate, req.EndDate, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("GetSchedule: access denied for user=%d", req.UserID)
		return nil, ErrAccessDenied
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, req.StartDate)
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, req.EndDate)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	overrides, err := s.scheduleRepo.ListOverridesByRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("GetSchedule: repository error listing overrides: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	blocks, err := s.scheduleRepo.ListBlocksByRange(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("GetSchedule: repository error listing blocks: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	resp := &models.ScheduleResponse{
		Overrides: make([]models.OverrideResponse, 0, len(overrides)),
		Blocks:    make([]models.BlockResponse, 0, len(blocks)),
	}
	for _, o := range overrides {
		resp.Overrides = append(resp.Overrides, *models.FromDomainOverride(o))
	}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, *models.FromDomainBlock(b))
	}

	s.logger.Info("GetSchedule: fetched %d overrides and %d blocks for period=%s..%s",
		len(overrides), len(blocks), req.StartDate, req.EndDate)
	return resp, nil
}

// findConflicts возвращает активные записи на дату (и слот, если указан)
func (s *Service) findConflicts(ctx context.Context, date time.Time, slot *types.TimeString) ([]*domain.Booking, error) {
	filter := domain.BookingsFilter{
		StartDate: &date,
		EndDate:   &date,
		StartTime: slot,
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("findConflicts: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: findConflicts - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// parseDateAndSlot парсит дату и опциональное время слота
func parseDateAndSlot(dateStr string, slotStr *string) (time.Time, *types.TimeString, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid date %q", dateStr)
	}

	if slotStr == nil {
		return date, nil, nil
	}

	slot, err := types.NewTimeStringFromString(*slotStr)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid start time %q", *slotStr)
	}

	return date, &slot, nil
}
