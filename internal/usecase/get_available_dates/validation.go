package get_available_dates

import (
	"fmt"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// Границы разумного для пользовательского ввода. Короткий или пустой
// индекс — не ошибка (ввод ещё идёт), а вот аномально длинные строки
// отсекаем до сопоставления.
const (
	maxPostcodeLength = 10
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.Postcode) > maxPostcodeLength {
		return fmt.Errorf("%w: postcode is too long", ErrInvalidInput)
	}

	if len(req.AddressLine1) > domain.MaxAddressLength {
		return fmt.Errorf("%w: addressLine1 is too long", ErrInvalidInput)
	}

	return nil
}
