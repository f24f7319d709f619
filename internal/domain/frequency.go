package domain

// Frequency represents the cleaning cadence selected by the customer
type Frequency string

const (
	Frequency4Weekly  Frequency = "4-weekly"
	Frequency8Weekly  Frequency = "8-weekly"
	Frequency12Weekly Frequency = "12-weekly"
	FrequencyAdhoc    Frequency = "adhoc"
)

// frequencyUplifts maps each cadence to the amount added to the base
// window-cleaning price. Data, not branches: a new cadence is a new row.
// The uplift applies to the base price only, never to surcharges or addons.
var frequencyUplifts = map[Frequency]float64{
	Frequency4Weekly:  0,
	Frequency8Weekly:  3,
	Frequency12Weekly: 5,
	FrequencyAdhoc:    20,
}

// frequencyLabels maps each cadence to its customer-facing label
var frequencyLabels = map[Frequency]string{
	Frequency4Weekly:  "Every 4 weeks",
	Frequency8Weekly:  "Every 8 weeks",
	Frequency12Weekly: "Every 12 weeks",
	FrequencyAdhoc:    "One-off clean",
}

// IsValid returns true if the frequency is one of the four known cadences
func (f Frequency) IsValid() bool {
	_, ok := frequencyUplifts[f]
	return ok
}

// IsRecurring returns true for repeat cadences. One-off (adhoc) cleans are
// not recurring and never qualify for the bundle discount.
func (f Frequency) IsRecurring() bool {
	return f.IsValid() && f != FrequencyAdhoc
}

// Uplift returns the flat amount added to the base price for this cadence.
// Unknown frequencies must be rejected before pricing; they return 0 here.
func (f Frequency) Uplift() float64 {
	return frequencyUplifts[f]
}

// Label returns the customer-facing label for this cadence
func (f Frequency) Label() string {
	if label, ok := frequencyLabels[f]; ok {
		return label
	}
	return string(f)
}
