package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	scheduleRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/schedule"
	facilityClient "github.com/quickcourt/QC-BookingService/internal/integrations/facilityservice"
	"github.com/quickcourt/QC-BookingService/internal/service/schedule/models"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Service сервис для работы с расписаниями кортов
type Service struct {
	scheduleRepo   ScheduleRepository
	facilityClient FacilityServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	facilityClient FacilityServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:   scheduleRepo,
		facilityClient: facilityClient,
		logger:         logger,
	}
}

// Get получает действующее расписание с учетом иерархии приоритетов
// Публичный метод - используется при построении сетки слотов
// Приоритет: корт > площадка > встроенный дефолт (05:00-22:00, шаг 30 минут)
func (s *Service) Get(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for facility=%d, court=%v", req.FacilityID, req.CourtID)

	if req.FacilityID <= 0 {
		return nil, fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	schedule, err := s.scheduleRepo.GetScheduleWithHierarchy(ctx, req.FacilityID, req.CourtID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("Get: no schedule configured for facility=%d, falling back to defaults", req.FacilityID)
			fallback := domain.DefaultSchedule()
			fallback.FacilityID = req.FacilityID
			return models.FromDomainSchedule(fallback), nil
		}
		s.logger.Error("Get: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule id=%d for facility=%d", schedule.ID, req.FacilityID)
	return models.FromDomainSchedule(schedule), nil
}

// Upsert создает или обновляет расписание площадки или отдельного корта
// Доступно только владельцу площадки
func (s *Service) Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Upsert: upserting schedule for facility=%d, court=%v by user=%s",
		req.FacilityID, req.CourtID, req.UserID)

	// 1. Валидируем параметры расписания
	if err := s.validateSchedule(req); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки и права владельца
	facility, err := s.facilityClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			s.logger.Warn("Upsert: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Upsert: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if facility.OwnerID != req.UserID {
		s.logger.Warn("Upsert: user=%s is not the owner of facility=%d", req.UserID, req.FacilityID)
		return nil, ErrAccessDenied
	}

	// 3. Если расписание для конкретного корта - проверяем, что корт существует
	if req.CourtID != nil {
		court, err := s.facilityClient.GetCourt(ctx, req.FacilityID, *req.CourtID)
		if err != nil {
			if errors.Is(err, facilityClient.ErrCourtNotFound) {
				s.logger.Warn("Upsert: court id=%d not found in facility=%d", *req.CourtID, req.FacilityID)
				return nil, ErrCourtNotFound
			}
			s.logger.Error("Upsert: failed to get court id=%d: %v", *req.CourtID, err)
			return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
		}
		if court.FacilityID != req.FacilityID {
			s.logger.Warn("Upsert: court id=%d belongs to facility=%d, not facility=%d",
				*req.CourtID, court.FacilityID, req.FacilityID)
			return nil, ErrCourtNotFound
		}
	}

	// 4. Создаем или обновляем расписание
	upserted, err := s.scheduleRepo.Upsert(ctx, req.ToDomainSchedule())
	if err != nil {
		s.logger.Error("Upsert: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully upserted schedule id=%d for facility=%d", upserted.ID, req.FacilityID)
	return models.FromDomainSchedule(upserted), nil
}

// Delete удаляет настроенное расписание, после чего снова действует
// уровень выше по иерархии (площадка или встроенный дефолт)
// Доступно только владельцу площадки
func (s *Service) Delete(ctx context.Context, facilityID int64, courtID *int64, userID string) error {
	s.logger.Info("Delete: deleting schedule for facility=%d, court=%v by user=%s", facilityID, courtID, userID)

	// 1. Проверяем права владельца
	facility, err := s.facilityClient.GetFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			s.logger.Warn("Delete: facility id=%d not found", facilityID)
			return ErrFacilityNotFound
		}
		s.logger.Error("Delete: failed to get facility id=%d: %v", facilityID, err)
		return fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if facility.OwnerID != userID {
		s.logger.Warn("Delete: user=%s is not the owner of facility=%d", userID, facilityID)
		return ErrAccessDenied
	}

	// 2. Находим расписание ровно этого уровня (без иерархического поиска)
	schedule, err := s.scheduleRepo.GetByFacilityAndCourt(ctx, facilityID, courtID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule not found for facility=%d, court=%v", facilityID, courtID)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for facility=%d: %v", facilityID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// 3. Удаляем
	if err := s.scheduleRepo.Delete(ctx, schedule.ID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%d: %v", schedule.ID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule id=%d", schedule.ID)
	return nil
}

// Вспомогательные методы

// validateSchedule валидирует параметры расписания
func (s *Service) validateSchedule(req *models.UpsertScheduleRequest) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.CourtID != nil && *req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	openTime := types.TimeString(req.OpenTime)
	if err := openTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}

	closeTime := types.TimeString(req.CloseTime)
	if err := closeTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}

	if !openTime.IsBefore(closeTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	return nil
}
