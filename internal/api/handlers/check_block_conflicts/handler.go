package check_block_conflicts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
)

const (
	msgInvalidInput  = "некорректная дата или время"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/block-conflicts?date=YYYY-MM-DD&time=HH:MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/block-conflicts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	date := r.URL.Query().Get("date")

	// Время опционально - без него проверяется весь день
	var timePtr *string
	if t := r.URL.Query().Get("time"); t != "" {
		timePtr = &t
	}

	serviceReq := &models.CheckConflictsRequest{
		UserID:    userID,
		Date:      date,
		StartTime: timePtr,
	}

	result, err := h.service.CheckConflicts(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /admin/block-conflicts - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /admin/block-conflicts - Invalid input: date=%q", date)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /admin/block-conflicts - Failed to check conflicts: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/block-conflicts - Conflicts checked: date=%s, count=%d", date, result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
