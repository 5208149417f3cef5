package get_facility_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
	"github.com/quickcourt/QC-BookingService/pkg/ptr"
)

// parseQuery разбирает query параметры фильтрации в запрос сервиса
// Поддерживаются: courtId, startDate, endDate, status, includeInactive
func parseQuery(facilityID int64, userID string, query url.Values) (*models.GetFacilityBookingsRequest, error) {
	req := &models.GetFacilityBookingsRequest{
		UserID:     userID,
		FacilityID: facilityID,
	}

	if raw := query.Get("courtId"); raw != "" {
		courtID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid courtId: %w", err)
		}
		req.CourtID = ptr.Ptr(courtID)
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = ptr.Ptr(startDate)
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		req.EndDate = ptr.Ptr(endDate)
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("endDate is before startDate")
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = ptr.Ptr(raw)
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
