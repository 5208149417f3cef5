package create_booking

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	createBooking "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID  int64   `json:"facilityId"`
	CourtID     int64   `json:"courtId"`
	BookingDate string  `json:"bookingDate"` // "2025-09-01"
	StartTime   string  `json:"startTime"`   // "10:00"
	EndTime     string  `json:"endTime"`     // "11:00"
	TotalAmount float64 `json:"totalAmount"`
	PaymentRef  *string `json:"paymentRef,omitempty"`
	OrderRef    *string `json:"orderRef,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	FacilityID  int64   `json:"facilityId"`
	CourtID     int64   `json:"courtId"`
	UserID      string  `json:"userId"`
	BookingDate string  `json:"bookingDate"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"totalAmount"`
	PaymentRef  *string `json:"paymentRef,omitempty"`
	OrderRef    *string `json:"orderRef,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время начала и конца слота
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		FacilityID:  r.FacilityID,
		CourtID:     r.CourtID,
		UserID:      userID,
		Date:        bookingDate,
		StartTime:   startTime,
		EndTime:     endTime,
		TotalAmount: r.TotalAmount,
		PaymentRef:  r.PaymentRef,
		OrderRef:    r.OrderRef,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		FacilityID:  resp.FacilityID,
		CourtID:     resp.CourtID,
		UserID:      resp.UserID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		TotalAmount: resp.TotalAmount,
		PaymentRef:  resp.PaymentRef,
		OrderRef:    resp.OrderRef,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
