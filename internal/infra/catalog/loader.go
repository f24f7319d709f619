package catalog

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// Catalog справочник цен и расписаний. Загружается один раз при старте и
// дальше только читается: оба движка получают его через read-only
// провайдер-интерфейсы своих usecase'ов.
type Catalog struct {
	price    *domain.PriceCatalog
	schedule *domain.ScheduleCatalog
}

// PriceCatalog возвращает прайс-лист
func (c *Catalog) PriceCatalog() *domain.PriceCatalog {
	return c.price
}

// ScheduleCatalog возвращает расписание маршрутов и календарь праздников
func (c *Catalog) ScheduleCatalog() *domain.ScheduleCatalog {
	return c.schedule
}

// Промежуточные структуры под TOML-файл справочника

type fileFormat struct {
	Pricing  pricingSection  `toml:"pricing"`
	Schedule scheduleSection `toml:"schedule"`
}

type pricingSection struct {
	FasciaSoffitMarkup float64           `toml:"fascia_soffit_markup"`
	DefaultGutterPrice float64           `toml:"default_gutter_price"`
	Surcharges         surchargesSection `toml:"surcharges"`
	Tiers              []tierRow         `toml:"tiers"`
	GutterPrices       []gutterRow       `toml:"gutter_prices"`
}

type surchargesSection struct {
	Conservatory float64 `toml:"conservatory"`
	Extension    float64 `toml:"extension"`
}

type tierRow struct {
	PropertyType string  `toml:"property_type"`
	BedroomBand  string  `toml:"bedroom_band"`
	BasePrice    float64 `toml:"base_price"`
}

type gutterRow struct {
	PropertyType string  `toml:"property_type"`
	BedroomBand  string  `toml:"bedroom_band"`
	Price        float64 `toml:"price"`
}

type scheduleSection struct {
	Entries      []entryRow          `toml:"entries"`
	BankHolidays map[string][]string `toml:"bank_holidays"`
}

type entryRow struct {
	PostcodePrefixes []string `toml:"postcode_prefixes"`
	BaseDates        []string `toml:"base_dates"`
	Recurrence       string   `toml:"recurrence"`
}

// Load читает справочник из TOML-файла.
// Структурные дефекты (пустые таблицы, кривые годы) — ошибка загрузки;
// кривые базовые даты в записях расписания здесь не проверяются: резолвер
// пропускает их на лету с записью в лог.
func Load(path string) (*Catalog, error) {
	var raw fileFormat
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	price, err := buildPriceCatalog(raw.Pricing)
	if err != nil {
		return nil, err
	}

	schedule, err := buildScheduleCatalog(raw.Schedule)
	if err != nil {
		return nil, err
	}

	return &Catalog{price: price, schedule: schedule}, nil
}

func buildPriceCatalog(raw pricingSection) (*domain.PriceCatalog, error) {
	if len(raw.Tiers) == 0 {
		return nil, fmt.Errorf("%w: pricing.tiers is empty", ErrInvalid)
	}
	if raw.DefaultGutterPrice <= 0 {
		return nil, fmt.Errorf("%w: pricing.default_gutter_price must be positive", ErrInvalid)
	}

	tiers := make([]domain.PriceTier, 0, len(raw.Tiers))
	for _, row := range raw.Tiers {
		tier := domain.PriceTier{
			PropertyType: domain.PropertyType(row.PropertyType),
			BedroomBand:  domain.BedroomBand(row.BedroomBand),
			BasePrice:    row.BasePrice,
		}
		if !tier.PropertyType.IsValid() || !tier.BedroomBand.IsValid() {
			return nil, fmt.Errorf("%w: unknown price tier type=%q band=%q", ErrInvalid, row.PropertyType, row.BedroomBand)
		}
		tiers = append(tiers, tier)
	}

	gutter := make([]domain.GutterPrice, 0, len(raw.GutterPrices))
	for _, row := range raw.GutterPrices {
		gutter = append(gutter, domain.GutterPrice{
			PropertyType: domain.PropertyType(row.PropertyType),
			BedroomBand:  domain.BedroomBand(row.BedroomBand),
			Price:        row.Price,
		})
	}

	return &domain.PriceCatalog{
		Tiers:        tiers,
		GutterPrices: gutter,
		Surcharges: domain.SurchargeRates{
			Conservatory: raw.Surcharges.Conservatory,
			Extension:    raw.Surcharges.Extension,
		},
		FasciaSoffitMarkup: raw.FasciaSoffitMarkup,
		DefaultGutterPrice: raw.DefaultGutterPrice,
	}, nil
}

func buildScheduleCatalog(raw scheduleSection) (*domain.ScheduleCatalog, error) {
	if len(raw.Entries) == 0 {
		return nil, fmt.Errorf("%w: schedule.entries is empty", ErrInvalid)
	}

	entries := make([]domain.ScheduleEntry, 0, len(raw.Entries))
	for i, row := range raw.Entries {
		if len(row.PostcodePrefixes) == 0 {
			return nil, fmt.Errorf("%w: schedule entry %d has no postcode prefixes", ErrInvalid, i)
		}
		entries = append(entries, domain.ScheduleEntry{
			PostcodePrefixes: row.PostcodePrefixes,
			BaseDates:        row.BaseDates,
			Recurrence:       domain.RecurrenceRule(row.Recurrence),
		})
	}

	// Годы в TOML — строковые ключи; движку нужен map по числовому году,
	// чтобы новый год был чисто данными
	holidays := make(domain.BankHolidayCalendar, len(raw.BankHolidays))
	for yearStr, dates := range raw.BankHolidays {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, fmt.Errorf("%w: bank_holidays year %q is not a number", ErrInvalid, yearStr)
		}
		holidays[year] = dates
	}

	return &domain.ScheduleCatalog{
		Entries:      entries,
		BankHolidays: holidays,
	}, nil
}
