package create_booking

import (
	"context"
	"time"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
	"github.com/avalonwc/AWC-BookingService/internal/integrations/notify"
	"github.com/avalonwc/AWC-BookingService/internal/usecase/calculate_quote"
	"github.com/avalonwc/AWC-BookingService/internal/usecase/get_available_dates"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.BookingRequest) (*domain.BookingRequest, error)
}

// QuoteCalculator интерфейс расчёта сметы. Смета всегда пересчитывается на
// сервере: цены, присланные клиентом, не принимаются на веру
type QuoteCalculator interface {
	Execute(ctx context.Context, req *calculate_quote.Request) (*calculate_quote.Response, error)
}

// DateResolver интерфейс подбора доступных дат
type DateResolver interface {
	Execute(ctx context.Context, req *get_available_dates.Request) (*get_available_dates.Response, error)
}

// NotifyClient интерфейс клиента почтового релея
type NotifyClient interface {
	SendQuoteWithGracefulDegradation(ctx context.Context, email *notify.QuoteEmail) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
