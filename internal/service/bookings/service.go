package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	bookingRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/booking"
	facilityClient "github.com/quickcourt/QC-BookingService/internal/integrations/facilityservice"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo    BookingRepository
	facilityClient FacilityServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	facilityClient FacilityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		facilityClient: facilityClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь видит только свое бронирование
// или бронирования своей площадки, если он ее владелец
func (s *Service) GetByID(ctx context.Context, id int64, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%s", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%v", req.UserID, req.Status)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%s", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetFacilityBookings получает бронирования площадки с гибкой фильтрацией
// Поддерживает фильтрацию по корту, периоду, статусу и включению отмененных
// Доступно только владельцу площадки
func (s *Service) GetFacilityBookings(ctx context.Context, req *models.GetFacilityBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFacilityBookings: fetching bookings for facility=%d, user=%s", req.FacilityID, req.UserID)

	// Проверяем права владельца площадки
	if err := s.checkOwnerAccess(ctx, req.FacilityID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityBookings: invalid filter for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFacilityBookings: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFacilityBookings: successfully fetched %d bookings for facility=%d", len(bookings), req.FacilityID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование и возвращает его обновленное состояние
// Отменить бронирование может только его владелец, и только из статуса booked.
// Отмена идемпотентной не является: повторная попытка вернет ErrCannotCancel
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%s", bookingID, req.UserID)

	var cancelled *domain.Booking

	// Проверка владельца и статуса выполняется в одной транзакции с записью,
	// чтобы статус не успел измениться между чтением и отменой
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Отмена доступна только владельцу бронирования
		if booking.UserID != req.UserID {
			s.logger.Warn("Cancel: access denied for user=%s to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		updated, err := s.bookingRepo.Cancel(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(cancelled), nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию:
// владелец бронирования или владелец площадки
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID string) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkOwnerAccess(ctx, booking.FacilityID, userID); err != nil {
		// Ошибка уже залогирована в checkOwnerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем площадки
func (s *Service) checkOwnerAccess(ctx context.Context, facilityID int64, userID string) error {
	facility, err := s.facilityClient.GetFacility(ctx, facilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			s.logger.Warn("checkOwnerAccess: facility id=%d not found", facilityID)
			return ErrFacilityNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get facility id=%d: %v", facilityID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get facility: %v", ErrInternal, err)
	}

	if facility.OwnerID == userID {
		return nil
	}

	s.logger.Warn("checkOwnerAccess: user=%s is not the owner of facility=%d", userID, facilityID)
	return ErrAccessDenied
}
