package get_slot_grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	scheduleStorage "github.com/quickcourt/QC-BookingService/internal/infra/storage/schedule"
)

// UseCase use case для построения сетки слотов корта на дату
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	logger       Logger

	now func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Execute выполняет use case построения сетки слотов
//
// Сетка - производное представление: каждая ячейка шагает от открытия
// с шагом расписания, интервал ячейки имеет запрошенную длительность.
// Ячейка недоступна, если ее интервал пересекается с активным бронированием
// или ее начало уже в прошлом. Сама сетка нигде не хранится
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание корта с учетом иерархии (корт -> площадка -> дефолт)
	schedule, err := uc.scheduleRepo.GetScheduleWithHierarchy(ctx, req.FacilityID, &req.CourtID)
	if err != nil {
		if errors.Is(err, scheduleStorage.ErrScheduleNotFound) {
			schedule = domain.DefaultSchedule()
		} else {
			uc.logger.Error("GetSlotGrid: failed to get schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = schedule.SlotDurationMinutes
	}

	// 3. Читаем активные бронирования корта на дату
	bookings, err := uc.bookingRepo.GetBookedByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("GetSlotGrid: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Строим сетку
	slots := uc.buildGrid(schedule, duration, req.Date, bookings)

	uc.logger.Info("GetSlotGrid: court=%d, date=%s, slots=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		CourtID:             req.CourtID,
		Date:                req.Date,
		OpenTime:            schedule.OpenTime,
		CloseTime:           schedule.CloseTime,
		SlotDurationMinutes: schedule.SlotDurationMinutes,
		Slots:               slots,
	}, nil
}

func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 {
		if req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes {
			return fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
		}
	}

	return nil
}
