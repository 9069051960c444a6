package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingDate  string  `json:"bookingDate"` // "2025-10-15"
	StartTime    string  `json:"startTime"`   // "10:00"
	CustomerName string  `json:"customerName"`
	ServiceName  string  `json:"serviceName"`
	Notes        *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	TicketRef    string  `json:"ticketRef"`
	CustomerID   int64   `json:"customerId"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	Status       string  `json:"status"`
	CustomerName string  `json:"customerName"`
	ServiceName  string  `json:"serviceName"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		Date:         bookingDate,
		StartTime:    startTime,
		CustomerName: r.CustomerName,
		ServiceName:  r.ServiceName,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		TicketRef:    resp.TicketRef,
		CustomerID:   resp.CustomerID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		Status:       resp.Status,
		CustomerName: resp.CustomerName,
		ServiceName:  resp.ServiceName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
