package get_month_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/SMC-BarberService/internal/usecase/get_month_availability"
)

const (
	msgInvalidMonth = "некорректный месяц, ожидается формат YYYY-MM"
)

type Handler struct {
	useCase MonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase MonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/month?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/month - Invalid month: %q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /availability/month - Failed to compute availability: month=%s, error=%v", month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/month - Availability computed: month=%s, days=%d", month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
