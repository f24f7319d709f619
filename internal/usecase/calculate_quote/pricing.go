package calculate_quote

import (
	"fmt"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// Подписи строк сметы (видны клиенту и попадают в письмо со сметой)
const (
	lineLabelConservatory = "Conservatory surcharge"
	lineLabelExtension    = "Extension surcharge"
	lineLabelGutter       = "Gutter clearing"
	lineLabelFascia       = "Fascia, soffit & gutter wash"
	lineLabelDiscount     = "Free window clean (bundle offer)"
	lineLabelBespoke      = "Bespoke quote to follow"
)

// frequencyAdjustedPrice применяет надбавку за периодичность к базовой цене.
// Надбавка применяется только к базовой цене мойки окон, никогда к
// надбавкам за пристройки и к допам.
func frequencyAdjustedPrice(basePrice float64, frequency domain.Frequency) float64 {
	return basePrice + frequency.Uplift()
}

// surchargeLines возвращает строки надбавок и их сумму.
// Надбавки добавляются к базовой цене, никогда не заменяют её.
func surchargeLines(rates domain.SurchargeRates, flags domain.SurchargeFlags) ([]domain.PriceLine, float64) {
	lines := make([]domain.PriceLine, 0, 2)
	total := 0.0

	if flags.HasConservatory {
		lines = append(lines, domain.PriceLine{Label: lineLabelConservatory, Amount: rates.Conservatory})
		total += rates.Conservatory
	}
	if flags.HasExtension {
		lines = append(lines, domain.PriceLine{Label: lineLabelExtension, Amount: rates.Extension})
		total += rates.Extension
	}

	return lines, total
}

// addonLines возвращает строки выбранных допов и их сумму.
// Цены берутся из прайс-листа: прочистка водостоков по тарифной сетке,
// мойка фасадных досок = прочистка + фиксированная наценка.
func addonLines(catalog *domain.PriceCatalog, req *Request) ([]domain.PriceLine, float64) {
	lines := make([]domain.PriceLine, 0, 2)
	total := 0.0

	if req.GutterClearing {
		price := catalog.GutterClearingPrice(req.PropertyType, req.BedroomBand)
		lines = append(lines, domain.PriceLine{Label: lineLabelGutter, Amount: price})
		total += price
	}
	if req.FasciaSoffitGutter {
		price := catalog.FasciaSoffitGutterPrice(req.PropertyType, req.BedroomBand)
		lines = append(lines, domain.PriceLine{Label: lineLabelFascia, Amount: price})
		total += price
	}

	return lines, total
}

// bundleDiscount реализует правило «бесплатная мойка окон».
// Скидка равна БАЗОВОЙ цене мойки окон (до надбавки за периодичность и до
// надбавок за пристройки) и даётся только когда:
//   - выбраны ОБА допа по водостокам;
//   - цена мойки окон (база + надбавки за пристройки) больше нуля;
//   - периодичность не разовая (adhoc скидку блокирует).
//
// Во всех остальных случаях скидка 0. Скидка никогда не бывает долей цены
// или иной суммой.
func bundleDiscount(basePrice, surchargeTotal float64, addons domain.AddonSelection, frequency domain.Frequency) float64 {
	if !addons.BothSelected() {
		return 0
	}
	if !frequency.IsRecurring() {
		return 0
	}
	if basePrice+surchargeTotal <= 0 {
		return 0
	}
	return basePrice
}

// windowLineLabel возвращает подпись строки мойки окон с периодичностью
func windowLineLabel(frequency domain.Frequency) string {
	return fmt.Sprintf("Window cleaning (%s)", frequency.Label())
}

// unpricedBreakdown возвращает нулевую смету для custom_quote / commercial:
// база 0, без надбавок, допов и скидки; расчётом занимается менеджер
func unpricedBreakdown() *Response {
	return &Response{
		Lines: []domain.PriceLine{
			{Label: lineLabelBespoke, Amount: 0},
		},
		SubtotalBeforeDiscount: 0,
		Discount:               0,
		GrandTotal:             0,
		Priced:                 false,
		AddonsAvailable:        false,
	}
}
