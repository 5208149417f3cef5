package check_availability

import (
	"context"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// UseCase use case проверки доступности интервала для корта
// Операция без побочных эффектов: безопасно вызывать сколько угодно раз
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute проверяет, свободен ли интервал [StartTime, EndTime) для корта на дату
//
// Интервалы считаются пересекающимися по предикату aStart < bEnd && bStart < aEnd:
// граничащие слоты (конец одного равен началу другого) не конфликтуют.
// Существование корта здесь не проверяется — это ответственность вызывающей стороны,
// проверка при создании бронирования выполняется отдельно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: court=%d, date=%s, interval=%s-%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных (до любых запросов к БД)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активные бронирования корта на дату (read-only транзакция)
	var bookings []*domain.Booking
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		bookings, err = uc.bookingRepo.GetBookedByCourtAndDate(txCtx, req.CourtID, req.Date)
		return err
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Считаем пересечения
	status := StatusAvailable
	if domain.CountBlocking(bookings, req.StartTime, req.EndTime) > 0 {
		status = StatusConflicting
	}

	uc.logger.Info("CheckAvailability: court=%d, interval=%s-%s -> %s",
		req.CourtID, req.StartTime, req.EndTime, status)

	return &Response{
		CourtID:   req.CourtID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	// Пустые и отрицательные интервалы отклоняются
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}
