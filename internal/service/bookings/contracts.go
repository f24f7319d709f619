package bookings

import (
	"context"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	List(ctx context.Context, filter domain.BookingRequestFilter) ([]*domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingRequestStatus) error
	Cancel(ctx context.Context, id int64, status domain.BookingRequestStatus, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
