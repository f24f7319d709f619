package calculate_quote

import (
	"github.com/avalonwc/AWC-BookingService/internal/domain"
	calculateQuote "github.com/avalonwc/AWC-BookingService/internal/usecase/calculate_quote"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Category     string `json:"category"`
	PropertyType string `json:"propertyType,omitempty"`
	BedroomBand  string `json:"bedroomBand,omitempty"`
	Frequency    string `json:"frequency,omitempty"`

	HasConservatory bool `json:"hasConservatory,omitempty"`
	HasExtension    bool `json:"hasExtension,omitempty"`

	GutterClearing     bool `json:"gutterClearing,omitempty"`
	FasciaSoffitGutter bool `json:"fasciaSoffitGutter,omitempty"`
}

// PriceLineResponse строка сметы в HTTP ответе
type PriceLineResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Lines                  []PriceLineResponse `json:"lines"`
	SubtotalBeforeDiscount float64             `json:"subtotalBeforeDiscount"`
	Discount               float64             `json:"discount"`
	GrandTotal             float64             `json:"grandTotal"`
	Priced                 bool                `json:"priced"`
	AddonsAvailable        bool                `json:"addonsAvailable"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *calculateQuote.Request {
	return &calculateQuote.Request{
		Category:     domain.PropertyCategory(r.Category),
		PropertyType: domain.PropertyType(r.PropertyType),
		BedroomBand:  domain.BedroomBand(r.BedroomBand),
		Frequency:    domain.Frequency(r.Frequency),

		HasConservatory: r.HasConservatory,
		HasExtension:    r.HasExtension,

		GutterClearing:     r.GutterClearing,
		FasciaSoffitGutter: r.FasciaSoffitGutter,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateQuote.Response) *QuoteResponse {
	lines := make([]PriceLineResponse, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		lines = append(lines, PriceLineResponse{Label: line.Label, Amount: line.Amount})
	}

	return &QuoteResponse{
		Lines:                  lines,
		SubtotalBeforeDiscount: resp.SubtotalBeforeDiscount,
		Discount:               resp.Discount,
		GrandTotal:             resp.GrandTotal,
		Priced:                 resp.Priced,
		AddonsAvailable:        resp.AddonsAvailable,
	}
}
