package domain

// AddonSelection holds the customer's addon choices. Addons are only
// offered while a priced residential window clean is active; they are not
// purchasable standalone.
type AddonSelection struct {
	GutterClearing     bool
	FasciaSoffitGutter bool
}

// BothSelected returns true if both gutter addons are selected, the first
// gate of the bundle discount
func (a AddonSelection) BothSelected() bool {
	return a.GutterClearing && a.FasciaSoffitGutter
}

// AnySelected returns true if at least one addon is selected
func (a AddonSelection) AnySelected() bool {
	return a.GutterClearing || a.FasciaSoffitGutter
}

// SurchargeFlags holds the property features that attract a flat surcharge.
// Surcharges apply in addition to, never instead of, the base price.
type SurchargeFlags struct {
	HasConservatory bool
	HasExtension    bool
}

// PriceLine is one labelled row of a price breakdown. Amount is signed;
// the bundle discount appears as a negative line.
type PriceLine struct {
	Label  string
	Amount float64
}

// PriceBreakdown is the itemised result of a quote computation, used for
// on-screen display and for the outbound quote email payload.
// Invariant: GrandTotal = SubtotalBeforeDiscount - Discount, and Discount
// is either 0 or exactly the tier's unadjusted base price.
type PriceBreakdown struct {
	Lines                  []PriceLine
	SubtotalBeforeDiscount float64
	Discount               float64
	GrandTotal             float64
}

// HasDiscount returns true if the bundle discount applied
func (b *PriceBreakdown) HasDiscount() bool {
	return b.Discount > 0
}
