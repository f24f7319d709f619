package get_available_dates

import (
	"time"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// ScheduleProvider интерфейс доступа к расписанию маршрутов и календарю
// государственных праздников. Справочные данные: загружаются один раз при
// старте процесса и только читаются.
type ScheduleProvider interface {
	ScheduleCatalog() *domain.ScheduleCatalog
}

// TimeProvider интерфейс для получения текущего времени (для тестирования).
// «Сегодня» всегда приходит снаружи, а не из глобальных часов, чтобы
// резолвер оставался детерминированным.
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
