package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Контактные поля проверяются только на наличие: формат email и телефона
// проверяет форма на клиенте
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customerName must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Postcode) == "" {
		return fmt.Errorf("%w: postcode is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.AddressLine1) == "" {
		return fmt.Errorf("%w: addressLine1 is required", ErrInvalidInput)
	}
	if len(req.AddressLine1) > domain.MaxAddressLength {
		return fmt.Errorf("%w: addressLine1 must not exceed %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if !req.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	// Для custom_quote / commercial поля дома не обязательны: расчёт
	// делает менеджер
	if req.Category.IsPriced() {
		if !req.PropertyType.IsValid() {
			return fmt.Errorf("%w: unknown propertyType %q", ErrInvalidInput, req.PropertyType)
		}
		if !req.BedroomBand.IsValid() {
			return fmt.Errorf("%w: unknown bedroomBand %q", ErrInvalidInput, req.BedroomBand)
		}
		if !req.Frequency.IsValid() {
			return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, req.Frequency)
		}
	}

	// Клиент выбирает ровно одно: конкретную дату или ASAP
	if req.ScheduledDate == nil && !req.ASAP {
		return fmt.Errorf("%w: either scheduledDate or asap is required", ErrInvalidInput)
	}
	if req.ScheduledDate != nil && req.ASAP {
		return fmt.Errorf("%w: scheduledDate and asap are mutually exclusive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// containsDate проверяет, что дата присутствует в списке предложенных
// (сравнение по календарному дню)
func containsDate(dates []time.Time, want time.Time) bool {
	y, m, d := want.Date()
	for _, dt := range dates {
		dy, dm, dd := dt.Date()
		if dy == y && dm == m && dd == d {
			return true
		}
	}
	return false
}
