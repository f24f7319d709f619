package models

import (
	"errors"
	"time"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking request status")
)

// Request модели

// CancelBookingRequest запрос на отмену заявки
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
	// ByCustomer true, когда отмену запросил клиент; иначе отмена со
	// стороны компании
	ByCustomer bool `json:"byCustomer,omitempty"`
}

// UpdateStatusRequest запрос на обновление статуса заявки
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListBookingRequestsRequest запрос на выборку заявок
type ListBookingRequestsRequest struct {
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода по дате первой уборки (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Postcode        *string    `json:"postcode,omitempty"`        // Фильтр по префиксу индекса (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые заявки
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingRequestsRequest) ToDomainFilter() (domain.BookingRequestFilter, error) {
	filter := domain.BookingRequestFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Postcode:        r.Postcode,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customerName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Postcode     string  `json:"postcode"`
	AddressLine1 string  `json:"addressLine1"`
	Town         *string `json:"town,omitempty"`

	Category           string `json:"category"`
	PropertyType       string `json:"propertyType,omitempty"`
	BedroomBand        string `json:"bedroomBand,omitempty"`
	Frequency          string `json:"frequency,omitempty"`
	HasConservatory    bool   `json:"hasConservatory"`
	HasExtension       bool   `json:"hasExtension"`
	GutterClearing     bool   `json:"gutterClearing"`
	FasciaSoffitGutter bool   `json:"fasciaSoffitGutter"`

	SubtotalBeforeDiscount float64 `json:"subtotalBeforeDiscount"`
	Discount               float64 `json:"discount"`
	GrandTotal             float64 `json:"grandTotal"`

	ScheduledDate *string `json:"scheduledDate,omitempty"` // "2025-10-15"
	ASAP          bool    `json:"asap"`

	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse ответ со списком заявок
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBookingRequest конвертирует domain модель в response
func FromDomainBookingRequest(b *domain.BookingRequest) *BookingResponse {
	resp := &BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		Postcode:     b.Postcode,
		AddressLine1: b.AddressLine1,
		Town:         b.Town,

		Category:           string(b.Category),
		PropertyType:       string(b.PropertyType),
		BedroomBand:        string(b.BedroomBand),
		Frequency:          string(b.Frequency),
		HasConservatory:    b.HasConservatory,
		HasExtension:       b.HasExtension,
		GutterClearing:     b.GutterClearing,
		FasciaSoffitGutter: b.FasciaSoffitGutter,

		SubtotalBeforeDiscount: b.SubtotalBeforeDiscount,
		Discount:               b.Discount,
		GrandTotal:             b.GrandTotal,

		ASAP: b.ASAP,

		Status: string(b.Status),
		Notes:  b.Notes,

		CancellationReason: b.CancellationReason,

		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}

	if b.ScheduledDate != nil {
		date := b.ScheduledDate.Format(domain.DateFormat)
		resp.ScheduledDate = &date
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingRequests конвертирует список domain моделей в response
func FromDomainBookingRequests(bookings []*domain.BookingRequest) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBookingRequest(b))
	}

	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainStatus конвертирует строковый статус в domain статус
func ToDomainStatus(status string) (domain.BookingRequestStatus, error) {
	switch domain.BookingRequestStatus(status) {
	case domain.StatusReceived,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByCompany:
		return domain.BookingRequestStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
