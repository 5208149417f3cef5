package get_facility_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
	msgInvalidFilter     = "некорректные параметры фильтрации"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgFacilityNotFound  = "площадка не найдена"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/bookings?courtId=&startDate=&endDate=&status=&includeInactive=
// Дашборд владельца площадки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем facilityId из URL
	vars := mux.Vars(r)
	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/bookings - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /facilities/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Разбираем фильтры
	serviceReq, err := parseQuery(facilityID, userID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/bookings - Invalid filter: facility_id=%d, error=%v", facilityID, err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	// Получаем бронирования площадки (сервис проверит права владельца)
	result, err := h.service.GetFacilityBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/bookings - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /facilities/{id}/bookings - Access denied: facility_id=%d, user_id=%s",
				facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/bookings - Invalid filter: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /facilities/{id}/bookings - Failed to get bookings: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/bookings - Bookings retrieved successfully: facility_id=%d, user_id=%s, count=%d",
		facilityID, userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
