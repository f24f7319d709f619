package calculate_quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_quote: invalid input data")

	// ErrUnknownTier возвращается, когда для связки тип дома + спальни нет
	// строки в прайс-листе. Закрытый enum: такие запросы должны отсекаться
	// на границе API.
	ErrUnknownTier = errors.New("calculate_quote: unknown property tier")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_quote: internal error")
)
