package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	createBooking "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"facilityId": 10,
	"courtId": 1,
	"bookingDate": "2025-09-01",
	"startTime": "09:00",
	"endTime": "10:00",
	"totalAmount": 500
}`

func doRequest(t *testing.T, uc CreateBookingUseCase, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if authenticated {
		req.Header.Set(middleware.HeaderUserID, "user-a")
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID: 1, FacilityID: 10, CourtID: 1, UserID: "user-a",
		BookingDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "09:00", EndTime: "10:00",
		Status: "booked", TotalAmount: 500,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}}

	rec := doRequest(t, uc, validBody, true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-09-01", resp.BookingDate)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "booked", resp.Status)

	// UserID берется из заголовка, а не из тела
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "user-a", uc.gotReq.UserID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "slot conflict", err: createBooking.ErrSlotConflict, wantStatus: http.StatusConflict},
		{name: "facility not found", err: createBooking.ErrFacilityNotFound, wantStatus: http.StatusNotFound},
		{name: "court not found", err: createBooking.ErrCourtNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, validBody, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"facilityId": "ten"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	body := strings.Replace(validBody, "2025-09-01", "01.09.2025", 1)
	rec := doRequest(t, &fakeUseCase{}, body, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
