package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPostcodeNotCovered возвращается, когда индекс вне зоны обслуживания
	ErrPostcodeNotCovered = errors.New("create_booking: postcode is not covered")

	// ErrDateNotAvailable возвращается, когда выбранная дата не входит в
	// список предлагаемых дат для этого индекса
	ErrDateNotAvailable = errors.New("create_booking: date is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
