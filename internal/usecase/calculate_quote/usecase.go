package calculate_quote

import (
	"context"
	"fmt"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// UseCase use case для расчёта построчной сметы по выбору клиента.
// Чистая функция над прайс-листом: без I/O, без состояния между вызовами.
type UseCase struct {
	catalogs CatalogProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogs CatalogProvider, logger Logger) *UseCase {
	return &UseCase{
		catalogs: catalogs,
		logger:   logger,
	}
}

// Execute выполняет use case расчёта сметы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateQuote: category=%s, type=%s, band=%s, frequency=%s, conservatory=%t, extension=%t, gutter=%t, fascia=%t",
		req.Category, req.PropertyType, req.BedroomBand, req.Frequency,
		req.HasConservatory, req.HasExtension, req.GutterClearing, req.FasciaSoffitGutter)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculateQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Custom/commercial: нулевая смета без скидок и допов
	if !req.Category.IsPriced() {
		uc.logger.Info("CalculateQuote: category=%s is not priced, returning zero quote", req.Category)
		return unpricedBreakdown(), nil
	}

	catalog := uc.catalogs.PriceCatalog()

	// 3. Базовая цена мойки окон по тарифной сетке
	basePrice, ok := catalog.BasePrice(req.PropertyType, req.BedroomBand)
	if !ok {
		// Сюда попадать не должны: enum'ы проверены выше. Если попали —
		// рассинхрон каталога и кода.
		uc.logger.Error("CalculateQuote: no price tier for type=%s band=%s", req.PropertyType, req.BedroomBand)
		return nil, fmt.Errorf("%w: type=%s band=%s", ErrUnknownTier, req.PropertyType, req.BedroomBand)
	}

	// 4. Надбавка за периодичность (только к базовой цене)
	windowPrice := frequencyAdjustedPrice(basePrice, req.Frequency)

	lines := make([]domain.PriceLine, 0, 6)
	lines = append(lines, domain.PriceLine{Label: windowLineLabel(req.Frequency), Amount: windowPrice})

	// 5. Надбавки за зимний сад и пристройку
	extraLines, surchargeTotal := surchargeLines(catalog.Surcharges, req.surchargeFlags())
	lines = append(lines, extraLines...)

	// 6. Допы по водостокам (доступны только при платной мойке окон)
	addonsAvailable := basePrice > 0
	addonsTotal := 0.0
	if addonsAvailable {
		var addons []domain.PriceLine
		addons, addonsTotal = addonLines(catalog, req)
		lines = append(lines, addons...)
	}

	// 7. Скидка «бесплатная мойка окон»: ровно базовая цена, без надбавки
	// за периодичность и без надбавок за пристройки
	discount := bundleDiscount(basePrice, surchargeTotal, req.addons(), req.Frequency)
	if !addonsAvailable {
		discount = 0
	}

	// 8. Итоги
	subtotal := windowPrice + surchargeTotal + addonsTotal
	if discount > 0 {
		lines = append(lines, domain.PriceLine{Label: lineLabelDiscount, Amount: -discount})
	}

	resp := &Response{
		Lines:                  lines,
		SubtotalBeforeDiscount: subtotal,
		Discount:               discount,
		GrandTotal:             subtotal - discount,
		Priced:                 true,
		AddonsAvailable:        addonsAvailable,
	}

	uc.logger.Info("CalculateQuote: subtotal=%.2f, discount=%.2f, total=%.2f",
		resp.SubtotalBeforeDiscount, resp.Discount, resp.GrandTotal)

	return resp, nil
}
