package get_available_dates

import "errors"

// Мягкие исходы резолвера. Это не сбои: HTTP-слой отдаёт их клиенту как
// статус подбора дат, а не как 5xx.
var (
	// ErrNeedMoreInput возвращается, пока индекс слишком короткий, чтобы
	// однозначно сопоставить его с маршрутом
	ErrNeedMoreInput = errors.New("get_available_dates: postcode needs more input")

	// ErrNotCovered возвращается, когда для индекса нет маршрута
	ErrNotCovered = errors.New("get_available_dates: postcode area is not covered")

	// ErrNoDatesInWindow возвращается, когда маршрут найден, но после
	// сдвига на рабочие дни ни одна дата не попала в шестинедельное окно
	ErrNoDatesInWindow = errors.New("get_available_dates: no dates in booking window")
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_dates: internal error")
)
