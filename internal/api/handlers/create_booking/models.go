package create_booking

import (
	"time"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
	createBooking "github.com/avalonwc/AWC-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string  `json:"customerName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Postcode     string  `json:"postcode"`
	AddressLine1 string  `json:"addressLine1"`
	Town         *string `json:"town,omitempty"`

	Category     string `json:"category"`
	PropertyType string `json:"propertyType,omitempty"`
	BedroomBand  string `json:"bedroomBand,omitempty"`
	Frequency    string `json:"frequency,omitempty"`

	HasConservatory    bool `json:"hasConservatory,omitempty"`
	HasExtension       bool `json:"hasExtension,omitempty"`
	GutterClearing     bool `json:"gutterClearing,omitempty"`
	FasciaSoffitGutter bool `json:"fasciaSoffitGutter,omitempty"`

	ScheduledDate *string `json:"scheduledDate,omitempty"` // "2025-10-15"
	ASAP          bool    `json:"asap,omitempty"`

	Notes *string `json:"notes,omitempty"`
}

// PriceLineResponse строка сметы в HTTP ответе
type PriceLineResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Postcode     string `json:"postcode"`
	AddressLine1 string `json:"addressLine1"`

	Lines                  []PriceLineResponse `json:"lines"`
	SubtotalBeforeDiscount float64             `json:"subtotalBeforeDiscount"`
	Discount               float64             `json:"discount"`
	GrandTotal             float64             `json:"grandTotal"`

	ScheduledDate *string `json:"scheduledDate,omitempty"`
	ASAP          bool    `json:"asap"`

	Status string `json:"status"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var scheduledDate *time.Time
	if r.ScheduledDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.ScheduledDate)
		if err != nil {
			return nil, err
		}
		scheduledDate = &parsed
	}

	return &createBooking.Request{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Phone:        r.Phone,
		Postcode:     r.Postcode,
		AddressLine1: r.AddressLine1,
		Town:         r.Town,

		Category:     domain.PropertyCategory(r.Category),
		PropertyType: domain.PropertyType(r.PropertyType),
		BedroomBand:  domain.BedroomBand(r.BedroomBand),
		Frequency:    domain.Frequency(r.Frequency),

		HasConservatory:    r.HasConservatory,
		HasExtension:       r.HasExtension,
		GutterClearing:     r.GutterClearing,
		FasciaSoffitGutter: r.FasciaSoffitGutter,

		ScheduledDate: scheduledDate,
		ASAP:          r.ASAP,

		Notes: r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	lines := make([]PriceLineResponse, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		lines = append(lines, PriceLineResponse{Label: line.Label, Amount: line.Amount})
	}

	result := &BookingResponse{
		ID:           resp.ID,
		CustomerName: resp.CustomerName,
		Email:        resp.Email,
		Postcode:     resp.Postcode,
		AddressLine1: resp.AddressLine1,

		Lines:                  lines,
		SubtotalBeforeDiscount: resp.SubtotalBeforeDiscount,
		Discount:               resp.Discount,
		GrandTotal:             resp.GrandTotal,

		ASAP: resp.ASAP,

		Status: resp.Status,

		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.ScheduledDate != nil {
		date := resp.ScheduledDate.Format(domain.DateFormat)
		result.ScheduledDate = &date
	}

	return result
}
