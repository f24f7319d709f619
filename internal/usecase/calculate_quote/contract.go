package calculate_quote

import (
	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// CatalogProvider интерфейс доступа к прайс-листу.
// Каталог загружается один раз при старте процесса и только читается.
type CatalogProvider interface {
	PriceCatalog() *domain.PriceCatalog
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
