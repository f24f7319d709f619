package domain

// PropertyType represents the building style of a residential property
type PropertyType string

const (
	PropertySemiDetached PropertyType = "Semi-Detached"
	PropertyDetached     PropertyType = "Detached"
)

// BedroomBand represents a property-size tier used as a pricing key.
// A band is a tier label, not an exact bedroom count.
type BedroomBand string

const (
	Band2To3 BedroomBand = "2-3"
	Band4    BedroomBand = "4"
	Band5    BedroomBand = "5"
)

// PropertyCategory routes a selection to the right pricing path
type PropertyCategory string

const (
	// CategoryResidential is the standard priced window-cleaning path
	CategoryResidential PropertyCategory = "residential"

	// CategoryCustomQuote covers 6+ bedroom and otherwise bespoke properties.
	// Priced at zero here; a human quote follows up.
	CategoryCustomQuote PropertyCategory = "custom_quote"

	// CategoryCommercial covers commercial premises. Priced at zero here;
	// a human quote follows up.
	CategoryCommercial PropertyCategory = "commercial"
)

// IsPriced returns true if this category is priced by the engine
// rather than deferred to a human quote
func (c PropertyCategory) IsPriced() bool {
	return c == CategoryResidential
}

// IsValid returns true if the category is one of the known values
func (c PropertyCategory) IsValid() bool {
	switch c {
	case CategoryResidential, CategoryCustomQuote, CategoryCommercial:
		return true
	default:
		return false
	}
}

// IsValid returns true if the property type is one of the known values
func (t PropertyType) IsValid() bool {
	return t == PropertySemiDetached || t == PropertyDetached
}

// IsValid returns true if the bedroom band is one of the known values
func (b BedroomBand) IsValid() bool {
	switch b {
	case Band2To3, Band4, Band5:
		return true
	default:
		return false
	}
}

// PriceTier is one row of the window-cleaning base price table
type PriceTier struct {
	PropertyType PropertyType
	BedroomBand  BedroomBand
	BasePrice    float64
}

// GutterPrice is one row of the gutter-clearing price table
type GutterPrice struct {
	PropertyType PropertyType
	BedroomBand  BedroomBand
	Price        float64
}

// SurchargeRates holds the flat per-feature surcharges. The rates are
// reference data so the business can retune them without a code change.
type SurchargeRates struct {
	Conservatory float64
	Extension    float64
}

// PriceCatalog is the read-only pricing reference data. Loaded once at
// startup and never mutated for the life of the process.
type PriceCatalog struct {
	Tiers        []PriceTier
	GutterPrices []GutterPrice
	Surcharges   SurchargeRates

	// FasciaSoffitMarkup is added on top of the gutter-clearing price to
	// form the fascia/soffit/gutter wash price
	FasciaSoffitMarkup float64

	// DefaultGutterPrice is the fail-open fallback for bedroom bands with
	// no row in GutterPrices
	DefaultGutterPrice float64
}

// BasePrice returns the window-cleaning base price for a tier.
// The bool reports whether the tier exists in the table; unknown tiers are
// a caller contract violation and must be rejected at the API boundary.
func (c *PriceCatalog) BasePrice(propertyType PropertyType, band BedroomBand) (float64, bool) {
	for _, tier := range c.Tiers {
		if tier.PropertyType == propertyType && tier.BedroomBand == band {
			return tier.BasePrice, true
		}
	}
	return 0, false
}

// GutterClearingPrice returns the gutter-clearing price for a tier.
// Bands without a table row fall back to DefaultGutterPrice rather than
// erroring; a user-facing estimate fails open to a safe default.
func (c *PriceCatalog) GutterClearingPrice(propertyType PropertyType, band BedroomBand) float64 {
	for _, row := range c.GutterPrices {
		if row.PropertyType == propertyType && row.BedroomBand == band {
			return row.Price
		}
	}
	return c.DefaultGutterPrice
}

// FasciaSoffitGutterPrice returns the fascia/soffit/gutter wash price for a
// tier: always the gutter-clearing price plus the fixed markup
func (c *PriceCatalog) FasciaSoffitGutterPrice(propertyType PropertyType, band BedroomBand) float64 {
	return c.GutterClearingPrice(propertyType, band) + c.FasciaSoffitMarkup
}
