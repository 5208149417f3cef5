package get_facility_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	scheduleService "github.com/quickcourt/QC-BookingService/internal/service/schedule"
	"github.com/quickcourt/QC-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
	msgInvalidCourtID    = "некорректный ID корта"
	msgInvalidInput      = "некорректные параметры запроса"
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

// Handle GET /api/v1/facilities/{facilityId}/schedule?courtId=1
// Возвращает действующее расписание: корт > площадка > встроенный дефолт
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем facilityId из URL
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/schedule - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// courtId опционален: без него возвращается расписание уровня площадки
	var courtID *int64
	if raw := r.URL.Query().Get("courtId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid court ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)
			return
		}
		courtID = &parsed
	}

	result, err := h.service.Get(r.Context(), &models.GetScheduleRequest{
		FacilityID: facilityID,
		CourtID:    courtID,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/schedule - Invalid input: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /facilities/{id}/schedule - Failed to get schedule: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/schedule - Schedule retrieved: facility_id=%d, court_id=%v, default=%t",
		facilityID, courtID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
