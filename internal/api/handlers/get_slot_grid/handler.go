package get_slot_grid

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/domain"
	getSlotGrid "github.com/quickcourt/QC-BookingService/internal/usecase/get_slot_grid"
)

const (
	msgInvalidFacilityID = "некорректный ID площадки"
	msgInvalidCourtID    = "некорректный ID корта"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration   = "некорректная длительность бронирования"
	msgInvalidInput      = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetSlotGridUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/courts/{courtId}/slots?date=YYYY-MM-DD&durationMinutes=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем facilityId и courtId из URL
	vars := mux.Vars(r)

	facilityID, err := strconv.ParseInt(vars["facilityId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/courts/{id}/slots - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/courts/{id}/slots - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	// Парсим query параметры
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/courts/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// durationMinutes опционален: 0 означает шаг сетки из расписания
	var durationMinutes int
	if raw := query.Get("durationMinutes"); raw != "" {
		durationMinutes, err = strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /facilities/{id}/courts/{id}/slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getSlotGrid.Request{
		FacilityID:      facilityID,
		CourtID:         courtID,
		Date:            date,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlotGrid.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/courts/{id}/slots - Invalid input: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /facilities/{id}/courts/{id}/slots - Failed to build grid: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{id}/courts/{id}/slots - Grid built: facility_id=%d, court_id=%d, date=%s, slots=%d",
		facilityID, courtID, query.Get("date"), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
