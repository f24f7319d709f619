package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/avalonwc/AWC-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const validBody = `{
	"customerName": "Sam Hill",
	"email": "sam@example.com",
	"phone": "07700 900123",
	"postcode": "BA6 8AB",
	"addressLine1": "14 Northload Street",
	"category": "residential",
	"propertyType": "Semi-Detached",
	"bedroomBand": "2-3",
	"frequency": "4-weekly",
	"scheduledDate": "2025-03-20"
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CreatesBooking(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:         42,
		Status:     "received",
		GrandTotal: 20,
		CreatedAt:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "BA6 8AB", uc.got.Postcode)
	require.NotNil(t, uc.got.ScheduledDate)
	assert.Equal(t, "2025-03-20", uc.got.ScheduledDate.Format("2006-01-02"))
}

func TestHandle_InvalidJSON(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, `{"customerName": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidScheduledDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, `{"customerName": "Sam", "scheduledDate": "20/03/2025"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UseCaseErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"postcode not covered", createBooking.ErrPostcodeNotCovered, http.StatusConflict},
		{"date not available", createBooking.ErrDateNotAvailable, http.StatusConflict},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := doRequest(h, validBody)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
