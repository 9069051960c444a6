package deactivate_override

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule"
	"github.com/m04kA/SMC-BarberService/internal/service/schedule/models"
)

const (
	msgInvalidOverrideID = "некорректный ID переопределения"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "переопределение не найдено или уже неактивно"
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

// Handle PATCH /api/v1/admin/overrides/{overrideId}/deactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	overrideID, err := strconv.ParseInt(vars["overrideId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/overrides/{id}/deactivate - Invalid override ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOverrideID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/overrides/{id}/deactivate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq := &models.DeactivateOverrideRequest{
		UserID:     userID,
		OverrideID: overrideID,
	}

	if err := h.service.DeactivateOverride(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/overrides/{id}/deactivate - Access denied: override_id=%d, user_id=%d",
				overrideID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrOverrideNotFound):
			h.logger.Warn("PATCH /admin/overrides/{id}/deactivate - Override not found: override_id=%d", overrideID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/overrides/{id}/deactivate - Failed to deactivate: override_id=%d, error=%v",
				overrideID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/overrides/{id}/deactivate - Override deactivated successfully: override_id=%d",
		overrideID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
