package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
	bookingRepo "github.com/avalonwc/AWC-BookingService/internal/infra/storage/booking"
	"github.com/avalonwc/AWC-BookingService/internal/service/bookings/models"
	"github.com/avalonwc/AWC-BookingService/pkg/ptr"
)

type fakeRepo struct {
	bookings map[int64]*domain.BookingRequest

	cancelledID     int64
	cancelledStatus domain.BookingRequestStatus
	cancelledReason string

	updatedID     int64
	updatedStatus domain.BookingRequestStatus

	listFilter *domain.BookingRequestFilter
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.BookingRequest, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.BookingRequestFilter) ([]*domain.BookingRequest, error) {
	f.listFilter = &filter
	result := make([]*domain.BookingRequest, 0, len(f.bookings))
	for _, b := range f.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingRequestStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, status domain.BookingRequestStatus, reason string) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testBooking(id int64, status domain.BookingRequestStatus) *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:           id,
		CustomerName: "Sam Hill",
		Email:        "sam@example.com",
		Phone:        "07700 900123",
		Postcode:     "BA6 8AB",
		AddressLine1: "14 Northload Street",
		Category:     domain.CategoryResidential,
		PropertyType: domain.PropertySemiDetached,
		BedroomBand:  domain.Band2To3,
		Frequency:    domain.Frequency4Weekly,
		GrandTotal:   20,
		Status:       status,
		CreatedAt:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.BookingRequest{
		7: testBooking(7, domain.StatusReceived),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "received", resp.Status)

	_, err = svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_PassesFilterThrough(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.BookingRequest{
		1: testBooking(1, domain.StatusReceived),
		2: testBooking(2, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingRequestsRequest{
		Status:   ptr.Ptr("received"),
		Postcode: ptr.Ptr("BA6"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	require.NotNil(t, repo.listFilter)
	require.NotNil(t, repo.listFilter.Status)
	assert.Equal(t, domain.StatusReceived, *repo.listFilter.Status)
	require.NotNil(t, repo.listFilter.Postcode)
	assert.Equal(t, "BA6", *repo.listFilter.Postcode)
}

func TestList_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingRequestsRequest{
		Status: ptr.Ptr("archived"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.BookingRequest{
		7: testBooking(7, domain.StatusConfirmed),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
		CancellationReason: "customer moved away",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByCompany, repo.cancelledStatus)
	assert.Equal(t, "customer moved away", repo.cancelledReason)
}

func TestCancel_ByCustomerUsesCustomerStatus(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.BookingRequest{
		7: testBooking(7, domain.StatusReceived),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{
		CancellationReason: "changed my mind",
		ByCustomer:         true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByUser, repo.cancelledStatus)
}

func TestCancel_Guards(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.BookingRequest{
		1: testBooking(1, domain.StatusCompleted),
		2: testBooking(2, domain.StatusCancelledByUser),
		3: testBooking(3, domain.StatusReceived),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{CancellationReason: "x"})
	require.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{CancellationReason: "x"})
	require.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), 3, &models.CancelBookingRequest{CancellationReason: "  "})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{CancellationReason: "x"})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.BookingRequest{
		7: testBooking(7, domain.StatusReceived),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_Guards(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.BookingRequest{
		1: testBooking(1, domain.StatusReceived),
		2: testBooking(2, domain.StatusCancelledByCompany),
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "archived"})
	require.ErrorIs(t, err, ErrInvalidInput)

	// Отмена только через Cancel
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled_by_user"})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "completed"})
	require.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "confirmed"})
	require.ErrorIs(t, err, ErrBookingNotFound)
}
