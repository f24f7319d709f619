package get_available_dates

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableDates "github.com/avalonwc/AWC-BookingService/internal/usecase/get_available_dates"
)

type fakeUseCase struct {
	resp *getAvailableDates.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableDates.Request) (*getAvailableDates.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, url string) (*httptest.ResponseRecorder, AvailableDatesResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	var body AvailableDatesResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHandle_ReturnsDates(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: &getAvailableDates.Response{
		Dates: []time.Time{
			time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 4, 17, 0, 0, 0, 0, time.UTC),
		},
	}}, nopLogger{})

	rec, body := doRequest(t, h, "/api/v1/available-dates?postcode=BS4+3QQ")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, StatusOK, body.Status)
	assert.Equal(t, []string{"2025-03-20", "2025-04-17"}, body.Dates)
}

func TestHandle_SoftStatusesAreNotErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus string
	}{
		{"need more input", getAvailableDates.ErrNeedMoreInput, StatusNeedMoreInput},
		{"not covered", getAvailableDates.ErrNotCovered, StatusNotCovered},
		{"no dates in window", getAvailableDates.ErrNoDatesInWindow, StatusNoDatesInWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec, body := doRequest(t, h, "/api/v1/available-dates?postcode=BS")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Empty(t, body.Dates)
		})
	}
}

func TestHandle_MissingPostcode(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: &getAvailableDates.Response{}}, nopLogger{})

	rec, _ := doRequest(t, h, "/api/v1/available-dates")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getAvailableDates.ErrInvalidInput}, nopLogger{})

	rec, _ := doRequest(t, h, "/api/v1/available-dates?postcode=BS4")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
