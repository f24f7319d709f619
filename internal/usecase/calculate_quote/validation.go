package calculate_quote

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса.
// Тип дома, диапазон спален и периодичность — закрытые enum'ы: неизвестные
// значения отсекаются здесь, до обращения к прайс-листу.
func validateRequest(req *Request) error {
	if !req.Category.IsValid() {
		return fmt.Errorf("%w: unknown property category %q", ErrInvalidInput, req.Category)
	}

	// Для custom_quote / commercial остальные поля не участвуют в расчёте
	if !req.Category.IsPriced() {
		return nil
	}

	if !req.PropertyType.IsValid() {
		return fmt.Errorf("%w: unknown property type %q", ErrInvalidInput, req.PropertyType)
	}

	if !req.BedroomBand.IsValid() {
		return fmt.Errorf("%w: unknown bedroom band %q", ErrInvalidInput, req.BedroomBand)
	}

	if !req.Frequency.IsValid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, req.Frequency)
	}

	return nil
}
