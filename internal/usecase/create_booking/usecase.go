package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	facilityClient "github.com/quickcourt/QC-BookingService/internal/integrations/facilityservice"
	"github.com/quickcourt/QC-BookingService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	facilityClient FacilityServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	facilityClient FacilityServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		facilityClient: facilityClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка пересечения и вставка выполняются одной сериализуемой транзакцией:
// чтение занятых слотов блокирует их через FOR UPDATE, а конфликт вставок по
// пустому набору (обе транзакции не увидели чужую запись) ловится абортом
// сериализации. Менеджер транзакций повторяет прогон, и повторная проверка
// возвращает ErrSlotConflict; если аборт повторился и после повтора, ошибка
// тоже отображается в ErrSlotConflict. Два одновременных запроса на один слот
// не могут оба завершиться успехом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, facility=%d, court=%d, date=%s, interval=%s-%s",
		req.UserID, req.FacilityID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных (до любых I/O)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	if _, err := uc.facilityClient.GetFacility(ctx, req.FacilityID); err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Проверяем существование корта и его принадлежность площадке
	court, err := uc.facilityClient.GetCourt(ctx, req.FacilityID, req.CourtID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found in facility id=%d", req.CourtID, req.FacilityID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if court.FacilityID != req.FacilityID {
		uc.logger.Warn("CreateBooking: court id=%d belongs to facility id=%d, not id=%d",
			req.CourtID, court.FacilityID, req.FacilityID)
		return nil, ErrCourtNotFound
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем check-then-insert одной сериализуемой транзакцией
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Читаем занятые слоты корта на дату (с блокировкой FOR UPDATE)
		bookings, err := uc.bookingRepo.GetBookedByCourtAndDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.2. Проверяем пересечение запрошенного интервала с занятыми
		if domain.CountBlocking(bookings, req.StartTime, req.EndTime) > 0 {
			uc.logger.Warn("CreateBooking: slot %s-%s is taken for court=%d on %s",
				req.StartTime, req.EndTime, req.CourtID, req.Date.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		// 4.3. Вставляем бронирование
		booking := &domain.Booking{
			FacilityID:  req.FacilityID,
			CourtID:     req.CourtID,
			UserID:      req.UserID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Status:      domain.StatusBooked,
			TotalAmount: req.TotalAmount,
			PaymentRef:  req.PaymentRef,
			OrderRef:    req.OrderRef,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Аборт сериализации, переживший повтор: проигравшая транзакция
		// пыталась занять тот же слот, для клиента это конфликт, а не сбой
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization abort after retry for court=%d on %s: %v",
				req.CourtID, req.Date.Format(domain.DateFormat), err)
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for user=%s", result.ID, req.UserID)

	return &Response{
		ID:          result.ID,
		FacilityID:  result.FacilityID,
		CourtID:     result.CourtID,
		UserID:      result.UserID,
		BookingDate: result.BookingDate,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Status:      string(result.Status),
		TotalAmount: result.TotalAmount,
		PaymentRef:  result.PaymentRef,
		OrderRef:    result.OrderRef,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
