package domain

// Availability window constants
const (
	// BookingHorizonDays is the fixed booking horizon: offered dates run
	// from tomorrow through today+42 days. Same-day booking is excluded.
	BookingHorizonDays = 42

	// MinPostcodeLength is the minimum normalised postcode length before
	// schedule matching is attempted at all
	MinPostcodeLength = 3

	// FullPostcodeLength is the length from which an unmatched postcode is
	// treated as not covered rather than still being typed
	FullPostcodeLength = 4

	// FourWeekIntervalDays is the step of the 4_WEEKLY recurrence rule and
	// the fallback step for unrecognised rules
	FourWeekIntervalDays = 28
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxAddressLength            = 200
	MaxNameLength               = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных заявок.
// Используется при фильтрации списка заявок компании.
var InactiveStatuses = []BookingRequestStatus{
	StatusCancelledByUser,
	StatusCancelledByCompany,
}

// ActiveStatuses список статусов активных заявок
var ActiveStatuses = []BookingRequestStatus{
	StatusReceived,
	StatusConfirmed,
	StatusCompleted,
}
