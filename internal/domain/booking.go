package domain

import "time"

// BookingRequestStatus represents the status of a booking request
type BookingRequestStatus string

const (
	StatusReceived           BookingRequestStatus = "received"
	StatusConfirmed          BookingRequestStatus = "confirmed"
	StatusCompleted          BookingRequestStatus = "completed"
	StatusCancelledByUser    BookingRequestStatus = "cancelled_by_user"
	StatusCancelledByCompany BookingRequestStatus = "cancelled_by_company"
)

// BookingRequest represents a submitted booking form: the customer's
// contact details, their property/frequency/addon selection, the price
// breakdown computed server-side at submission time, and the requested
// first clean date
type BookingRequest struct {
	ID int64

	// Contact details (validated for presence only; format checks are a
	// form concern)
	CustomerName string
	Email        string
	Phone        string
	Postcode     string
	AddressLine1 string
	Town         *string

	// Selection
	Category           PropertyCategory
	PropertyType       PropertyType
	BedroomBand        BedroomBand
	Frequency          Frequency
	HasConservatory    bool
	HasExtension       bool
	GutterClearing     bool
	FasciaSoffitGutter bool

	// Denormalized price snapshot taken at submission time, so later
	// catalog changes never rewrite quoted history
	SubtotalBeforeDiscount float64
	Discount               float64
	GrandTotal             float64

	// Requested first clean. ScheduledDate is nil when the customer picked
	// the ASAP fallback instead of a resolved round date.
	ScheduledDate *time.Time
	ASAP          bool

	Status BookingRequestStatus
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking request is in an active state
func (b *BookingRequest) IsActive() bool {
	return b.Status != StatusCancelledByUser && b.Status != StatusCancelledByCompany
}

// CanBeCancelled returns true if the booking request can be cancelled
func (b *BookingRequest) CanBeCancelled() bool {
	return b.Status == StatusReceived || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking request has been cancelled
func (b *BookingRequest) IsCancelled() bool {
	return b.Status == StatusCancelledByUser || b.Status == StatusCancelledByCompany
}

// BookingRequestFilter фильтр для выборки заявок на бронирование
type BookingRequestFilter struct {
	Status          *BookingRequestStatus // Фильтр по статусу (опционально)
	StartDate       *time.Time            // Начало периода по дате первой уборки (опционально)
	EndDate         *time.Time            // Конец периода по дате первой уборки (опционально)
	Postcode        *string               // Фильтр по префиксу индекса (опционально)
	IncludeInactive bool                  // Включать ли отменённые заявки
}
