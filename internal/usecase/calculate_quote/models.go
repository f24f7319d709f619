package calculate_quote

import (
	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// Request модель запроса на расчёт сметы
type Request struct {
	Category     domain.PropertyCategory // Категория объекта (residential / custom_quote / commercial)
	PropertyType domain.PropertyType     // Тип дома (для residential)
	BedroomBand  domain.BedroomBand      // Диапазон спален (для residential)
	Frequency    domain.Frequency        // Периодичность уборки (для residential)

	HasConservatory bool // Есть ли зимний сад (+надбавка)
	HasExtension    bool // Есть ли пристройка (+надбавка)

	GutterClearing     bool // Выбрана ли прочистка водостоков
	FasciaSoffitGutter bool // Выбрана ли мойка фасадных досок и водостоков
}

// Response модель ответа с построчной сметой
type Response struct {
	Lines                  []domain.PriceLine // Строки сметы в порядке отображения
	SubtotalBeforeDiscount float64            // Сумма до скидки
	Discount               float64            // Скидка (0 или базовая цена мойки окон)
	GrandTotal             float64            // Итог к оплате

	// Priced false для custom_quote / commercial: цена 0, расчёт у менеджера
	Priced bool

	// AddonsAvailable true, когда допы можно предлагать (активна платная
	// мойка окон жилого дома)
	AddonsAvailable bool
}

// addons возвращает выбор допов из запроса
func (r *Request) addons() domain.AddonSelection {
	return domain.AddonSelection{
		GutterClearing:     r.GutterClearing,
		FasciaSoffitGutter: r.FasciaSoffitGutter,
	}
}

// surchargeFlags возвращает флаги надбавок из запроса
func (r *Request) surchargeFlags() domain.SurchargeFlags {
	return domain.SurchargeFlags{
		HasConservatory: r.HasConservatory,
		HasExtension:    r.HasExtension,
	}
}
