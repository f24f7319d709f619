package calculate_quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

type fakeCatalogProvider struct {
	catalog *domain.PriceCatalog
}

func (f *fakeCatalogProvider) PriceCatalog() *domain.PriceCatalog {
	return f.catalog
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase() *UseCase {
	return NewUseCase(&fakeCatalogProvider{catalog: testCatalog()}, nopLogger{})
}

func TestExecute_SemiDetached8WeeklyNoExtras(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Category:     domain.CategoryResidential,
		PropertyType: domain.PropertySemiDetached,
		BedroomBand:  domain.Band2To3,
		Frequency:    domain.Frequency8Weekly,
	})
	require.NoError(t, err)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "Window cleaning (Every 8 weeks)", resp.Lines[0].Label)
	assert.Equal(t, 23.0, resp.Lines[0].Amount)
	assert.Equal(t, 23.0, resp.SubtotalBeforeDiscount)
	assert.Equal(t, 0.0, resp.Discount)
	assert.Equal(t, 23.0, resp.GrandTotal)
	assert.True(t, resp.Priced)
	assert.True(t, resp.AddonsAvailable)
}

func TestExecute_Detached4BedAdhocWithConservatory(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Category:        domain.CategoryResidential,
		PropertyType:    domain.PropertyDetached,
		BedroomBand:     domain.Band4,
		Frequency:       domain.FrequencyAdhoc,
		HasConservatory: true,
	})
	require.NoError(t, err)

	// 30 базовая +20 adhoc = 50, +5 зимний сад
	assert.Equal(t, 55.0, resp.SubtotalBeforeDiscount)
	assert.Equal(t, 0.0, resp.Discount)
	assert.Equal(t, 55.0, resp.GrandTotal)
}

func TestExecute_BundleDiscountIsUnadjustedBasePrice(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Category:           domain.CategoryResidential,
		PropertyType:       domain.PropertySemiDetached,
		BedroomBand:        domain.Band2To3,
		Frequency:          domain.Frequency4Weekly,
		GutterClearing:     true,
		FasciaSoffitGutter: true,
	})
	require.NoError(t, err)

	// 20 окна + 80 водостоки + 100 фасадные доски
	assert.Equal(t, 200.0, resp.SubtotalBeforeDiscount)
	assert.Equal(t, 20.0, resp.Discount)
	assert.Equal(t, 180.0, resp.GrandTotal)

	// Скидка отображается отрицательной строкой
	last := resp.Lines[len(resp.Lines)-1]
	assert.Equal(t, "Free window clean (bundle offer)", last.Label)
	assert.Equal(t, -20.0, last.Amount)
}

func TestExecute_DiscountStaysBasePriceWithFrequencyAndSurcharges(t *testing.T) {
	uc := newTestUseCase()

	// Частая ошибка портирования: скидка должна быть базовой ценой (25),
	// а не ценой с надбавкой за периодичность (28) и не с пристройками (33)
	resp, err := uc.Execute(context.Background(), &Request{
		Category:           domain.CategoryResidential,
		PropertyType:       domain.PropertyDetached,
		BedroomBand:        domain.Band2To3,
		Frequency:          domain.Frequency8Weekly,
		HasConservatory:    true,
		HasExtension:       true,
		GutterClearing:     true,
		FasciaSoffitGutter: true,
	})
	require.NoError(t, err)

	// (25+3) окна + 5 + 5 надбавки + 100 + 120 допы = 258
	assert.Equal(t, 258.0, resp.SubtotalBeforeDiscount)
	assert.Equal(t, 25.0, resp.Discount)
	assert.Equal(t, 233.0, resp.GrandTotal)
}

func TestExecute_AdhocBlocksBundle(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		Category:           domain.CategoryResidential,
		PropertyType:       domain.PropertySemiDetached,
		BedroomBand:        domain.Band2To3,
		Frequency:          domain.FrequencyAdhoc,
		GutterClearing:     true,
		FasciaSoffitGutter: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Discount)
	assert.Equal(t, resp.SubtotalBeforeDiscount, resp.GrandTotal)
}

func TestExecute_GrandTotalInvariant(t *testing.T) {
	uc := newTestUseCase()

	requests := []*Request{
		{Category: domain.CategoryResidential, PropertyType: domain.PropertyDetached, BedroomBand: domain.Band5, Frequency: domain.Frequency12Weekly},
		{Category: domain.CategoryResidential, PropertyType: domain.PropertySemiDetached, BedroomBand: domain.Band4, Frequency: domain.Frequency4Weekly, HasExtension: true, GutterClearing: true},
		{Category: domain.CategoryResidential, PropertyType: domain.PropertyDetached, BedroomBand: domain.Band4, Frequency: domain.Frequency8Weekly, GutterClearing: true, FasciaSoffitGutter: true},
	}

	for _, req := range requests {
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, resp.SubtotalBeforeDiscount-resp.Discount, resp.GrandTotal)
	}
}

func TestExecute_UnpricedCategories(t *testing.T) {
	uc := newTestUseCase()

	for _, category := range []domain.PropertyCategory{domain.CategoryCustomQuote, domain.CategoryCommercial} {
		resp, err := uc.Execute(context.Background(), &Request{
			Category: category,
			// Выбор допов на этих категориях игнорируется: допы недоступны
			GutterClearing:     true,
			FasciaSoffitGutter: true,
		})
		require.NoError(t, err)

		assert.False(t, resp.Priced)
		assert.False(t, resp.AddonsAvailable)
		assert.Equal(t, 0.0, resp.SubtotalBeforeDiscount)
		assert.Equal(t, 0.0, resp.Discount)
		assert.Equal(t, 0.0, resp.GrandTotal)
	}
}

func TestExecute_RejectsUnknownEnums(t *testing.T) {
	uc := newTestUseCase()

	tests := []struct {
		name string
		req  *Request
	}{
		{"unknown category", &Request{Category: "industrial"}},
		{"unknown property type", &Request{Category: domain.CategoryResidential, PropertyType: "Bungalow", BedroomBand: domain.Band4, Frequency: domain.Frequency4Weekly}},
		{"unknown band", &Request{Category: domain.CategoryResidential, PropertyType: domain.PropertyDetached, BedroomBand: "6+", Frequency: domain.Frequency4Weekly}},
		{"unknown frequency", &Request{Category: domain.CategoryResidential, PropertyType: domain.PropertyDetached, BedroomBand: domain.Band4, Frequency: "weekly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
