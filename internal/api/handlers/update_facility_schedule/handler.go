package update_facility_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	scheduleService "github.com/quickcourt/QC-BookingService/internal/service/schedule"
)

const (
	msgInvalidFacilityID  = "некорректный ID площадки"
	msgInvalidCourtID     = "некорректный ID корта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры расписания"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgFacilityNotFound   = "площадка не найдена"
	msgCourtNotFound      = "корт не найден"
	msgScheduleNotFound   = "расписание не настроено"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/facilities/{facilityId}/schedule
// Создает или обновляет расписание площадки либо отдельного корта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityID, userID, ok := h.parseCommon(w, r, "PUT")
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /facilities/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(facilityID, userID))
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrFacilityNotFound):
			h.logger.Warn("PUT /facilities/{id}/schedule - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, scheduleService.ErrCourtNotFound):
			h.logger.Warn("PUT /facilities/{id}/schedule - Court not found: facility_id=%d, court_id=%v",
				facilityID, req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("PUT /facilities/{id}/schedule - Access denied: facility_id=%d, user_id=%s",
				facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /facilities/{id}/schedule - Invalid input: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /facilities/{id}/schedule - Failed to upsert schedule: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /facilities/{id}/schedule - Schedule upserted: facility_id=%d, user_id=%s, schedule_id=%d",
		facilityID, userID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/facilities/{facilityId}/schedule?courtId=1
// Снимает настроенное расписание, возвращая уровень выше по иерархии
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	facilityID, userID, ok := h.parseCommon(w, r, "DELETE")
	if !ok {
		return
	}

	var courtID *int64
	if raw := r.URL.Query().Get("courtId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("DELETE /facilities/{id}/schedule - Invalid court ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)
			return
		}
		courtID = &parsed
	}

	err := h.service.Delete(r.Context(), facilityID, courtID, userID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrFacilityNotFound):
			h.logger.Warn("DELETE /facilities/{id}/schedule - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, scheduleService.ErrScheduleNotFound):
			h.logger.Warn("DELETE /facilities/{id}/schedule - Schedule not found: facility_id=%d, court_id=%v",
				facilityID, courtID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, scheduleService.ErrAccessDenied):
			h.logger.Warn("DELETE /facilities/{id}/schedule - Access denied: facility_id=%d, user_id=%s",
				facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /facilities/{id}/schedule - Failed to delete schedule: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /facilities/{id}/schedule - Schedule deleted: facility_id=%d, user_id=%s",
		facilityID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// parseCommon извлекает facilityId из URL и userID из контекста
func (h *Handler) parseCommon(w http.ResponseWriter, r *http.Request, method string) (int64, string, bool) {
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s /facilities/{id}/schedule - Invalid facility ID: %v", method, err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return 0, "", false
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s /facilities/{id}/schedule - Missing user ID", method)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, "", false
	}

	return facilityID, userID, true
}
