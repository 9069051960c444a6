package create_override

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректная дата, время или вместимость"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgOverrideExists     = "на этот слот уже есть активное переопределение"
	msgHasConflicts       = "записей больше новой вместимости, используйте force"
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

// Handle POST /api/v1/admin/overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/overrides - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/overrides - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CreateOverrideRequest{
		UserID:    userID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Capacity:  req.Capacity,
		Force:     req.Force,
	}

	result, err := h.service.CreateOverride(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /admin/overrides - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrOverrideExists):
			h.logger.Warn("POST /admin/overrides - Override exists: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgOverrideExists)

		case errors.Is(err, schedule.ErrHasConflicts):
			h.logger.Warn("POST /admin/overrides - Has conflicts: date=%s, time=%s, capacity=%d",
				req.Date, req.StartTime, req.Capacity)
			handlers.RespondConflict(w, msgHasConflicts)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /admin/overrides - Invalid input: date=%q, time=%q, capacity=%d",
				req.Date, req.StartTime, req.Capacity)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/overrides - Failed to create override: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/overrides - Override created successfully: override_id=%d, date=%s, capacity=%d",
		result.ID, req.Date, req.Capacity)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
