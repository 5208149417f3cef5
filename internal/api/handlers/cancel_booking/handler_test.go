package cancel_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
	"github.com/quickcourt/QC-BookingService/pkg/ptr"
)

type fakeService struct {
	resp *models.BookingResponse
	err  error

	gotBookingID int64
	gotUserID    string
}

func (f *fakeService) Cancel(_ context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	f.gotBookingID = bookingID
	f.gotUserID = req.UserID
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc BookingService, path string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	if authenticated {
		req.Header.Set(middleware.HeaderUserID, "user-a")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{
		ID: 7, FacilityID: 10, CourtID: 1, UserID: "user-a",
		BookingDate: "2025-09-01", StartTime: "09:00", EndTime: "10:00",
		Status:      "cancelled",
		TotalAmount: 500,
		CancelledAt: ptr.Ptr("2025-09-01T08:00:00Z"),
	}}

	rec := doRequest(t, svc, "/api/v1/bookings/7/cancel", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotBookingID)
	assert.Equal(t, "user-a", svc.gotUserID)

	// В ответе обновленное бронирование, а не пустое тело
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, "2025-09-01T08:00:00Z", *resp.CancelledAt)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "access denied", err: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "cannot cancel", err: bookings.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeService{err: tt.err}, "/api/v1/bookings/7/cancel", true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/api/v1/bookings/7/cancel", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "/api/v1/bookings/abc/cancel", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
