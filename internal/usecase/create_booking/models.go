package create_booking

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	FacilityID int64            // ID площадки
	CourtID    int64            // ID корта
	UserID     string           // ID пользователя из identity-провайдера (из AuthContext запроса)
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Начало слота (например, "10:00")
	EndTime    types.TimeString // Конец слота, не включается (например, "11:00")

	TotalAmount float64 // Цена на момент бронирования

	PaymentRef *string // Ссылка на платеж во внешнем шлюзе (опционально)
	OrderRef   *string // Ссылка на заказ во внешнем шлюзе (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	FacilityID  int64
	CourtID     int64
	UserID      string
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string
	TotalAmount float64
	PaymentRef  *string
	OrderRef    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
