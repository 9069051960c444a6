package models

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Request модели

// CreateBlockRequest запрос на блокировку слота или целого дня
type CreateBlockRequest struct {
	UserID    int64   `json:"userId"`
	Date      string  `json:"date"`                // "2025-10-15"
	StartTime *string `json:"startTime,omitempty"` // nil = весь день
	Reason    *string `json:"reason,omitempty"`
	Force     bool    `json:"force,omitempty"` // Создать несмотря на затронутые записи
}

// DeleteBlockRequest запрос на снятие блокировки
type DeleteBlockRequest struct {
	UserID  int64 `json:"userId"`
	BlockID int64 `json:"blockId"`
}

// CreateOverrideRequest запрос на переопределение вместимости слота
type CreateOverrideRequest struct {
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	Capacity  int    `json:"capacity"`
	Force     bool   `json:"force,omitempty"` // Применить даже если записей больше новой вместимости
}

// DeactivateOverrideRequest запрос на деактивацию переопределения
type DeactivateOverrideRequest struct {
	UserID     int64 `json:"userId"`
	OverrideID int64 `json:"overrideId"`
}

// CheckConflictsRequest запрос на проверку затронутых записей
type CheckConflictsRequest struct {
	UserID    int64   `json:"userId"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime,omitempty"` // nil = весь день
}

// GetScheduleRequest запрос на просмотр правок расписания за период
type GetScheduleRequest struct {
	UserID    int64  `json:"userId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Response модели

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	StartTime *string   `json:"startTime,omitempty"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OverrideResponse ответ с данными переопределения вместимости
type OverrideResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	Capacity  int       `json:"capacity"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ConflictBooking запись, затронутая правкой расписания
type ConflictBooking struct {
	ID           int64  `json:"id"`
	TicketRef    string `json:"ticketRef"`
	CustomerID   int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	StartTime    string `json:"startTime"`
	Status       string `json:"status"`
}

// ConflictsResponse список затронутых записей
type ConflictsResponse struct {
	Date      string            `json:"date"`
	StartTime *string           `json:"startTime,omitempty"`
	Count     int               `json:"count"`
	Conflicts []ConflictBooking `json:"bookings"`
}

// ScheduleResponse правки расписания за период
type ScheduleResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
	Blocks    []BlockResponse    `json:"blocks"`
}

// Методы конвертации

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.BlockedSlot) *BlockResponse {
	if b == nil {
		return nil
	}

	resp := &BlockResponse{
		ID:        b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}

	if b.StartTime != nil {
		st := b.StartTime.String()
		resp.StartTime = &st
	}

	return resp
}

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.CapacityOverride) *OverrideResponse {
	if o == nil {
		return nil
	}

	return &OverrideResponse{
		ID:        o.ID,
		Date:      o.Date.Format(domain.DateFormat),
		StartTime: o.StartTime.String(),
		Capacity:  o.Capacity,
		Active:    o.Active,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// FromDomainConflicts конвертирует затронутые записи в DTO
func FromDomainConflicts(bookings []*domain.Booking) []ConflictBooking {
	conflicts := make([]ConflictBooking, 0, len(bookings))
	for _, b := range bookings {
		conflicts = append(conflicts, ConflictBooking{
			ID:           b.ID,
			TicketRef:    b.TicketRef,
			CustomerID:   b.CustomerID,
			CustomerName: b.CustomerName,
			StartTime:    b.StartTime.String(),
			Status:       string(b.Status),
		})
	}
	return conflicts
}
