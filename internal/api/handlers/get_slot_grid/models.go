package get_slot_grid

import (
	"github.com/quickcourt/QC-BookingService/internal/domain"
	getSlotGrid "github.com/quickcourt/QC-BookingService/internal/usecase/get_slot_grid"
)

// SlotResponse одна ячейка сетки
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// SlotGridResponse HTTP response model
type SlotGridResponse struct {
	CourtID             int64          `json:"courtId"`
	Date                string         `json:"date"`
	OpenTime            string         `json:"openTime"`
	CloseTime           string         `json:"closeTime"`
	SlotDurationMinutes int            `json:"slotDurationMinutes"`
	Slots               []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotGrid.Response) *SlotGridResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
		}
	}

	return &SlotGridResponse{
		CourtID:             resp.CourtID,
		Date:                resp.Date.Format(domain.DateFormat),
		OpenTime:            resp.OpenTime.String(),
		CloseTime:           resp.CloseTime.String(),
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               slots,
	}
}
