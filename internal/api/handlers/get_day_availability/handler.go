package get_day_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	getDayAvailability "github.com/m04kA/SMC-BarberService/internal/usecase/get_day_availability"
)

const (
	msgInvalidDate = "некорректная дата, ожидается формат YYYY-MM-DD"
)

type Handler struct {
	useCase DayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase DayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/day?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getDayAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/day - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability/day - Failed to compute availability: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/day - Availability computed: date=%s, slots=%d", date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
