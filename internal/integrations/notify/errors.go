package notify

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notify client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе релея
	ErrInvalidResponse = errors.New("notify client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation:
	// релей недоступен, заявка сохраняется, письмо уйдёт при ручном
	// повторе
	ErrServiceDegraded = errors.New("notify relay unavailable: graceful degradation applied")
)
