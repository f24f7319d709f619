package get_available_dates

import (
	"context"
	"time"
)

// UseCase use case подбора дат уборки по индексу и адресу.
// Чистая функция над расписанием и календарём праздников: без I/O, без
// состояния между вызовами; «сегодня» приходит из TimeProvider.
type UseCase struct {
	schedules    ScheduleProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedules ScheduleProvider, logger Logger) *UseCase {
	return &UseCase{
		schedules:    schedules,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подбора дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: postcode=%q", req.Postcode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	catalog := uc.schedules.ScheduleCatalog()

	// 2. Подбираем записи расписания по индексу (и адресу — для Meare)
	entries, err := matchEntries(catalog.Entries, req.Postcode, req.AddressLine1)
	if err != nil {
		// Мягкие исходы пробрасываем как есть, без обёрток
		return nil, err
	}

	// 3. «Сегодня» как календарный день
	today := dateOnly(uc.timeProvider.Now())

	// 4. Для каждой базовой даты каждой записи: проекция вперёд по правилу
	// повторения, сдвиг на ближайший рабочий день, фильтр по окну
	candidates := make([]time.Time, 0, 8)

	for _, entry := range entries {
		for _, baseDate := range entry.BaseDates {
			occurrence, err := nextOccurrenceOnOrAfter(baseDate, entry.Recurrence, today)
			if err != nil {
				// Кривая дата в справочнике — дефект конфигурации, а не
				// пользовательская ошибка: пишем в лог и идём дальше
				uc.logger.Warn("GetAvailableDates: skipping malformed base date %q: %v", baseDate, err)
				continue
			}

			adjusted := nextWorkingDay(occurrence, catalog.BankHolidays)

			if withinBookingWindow(adjusted, today) {
				candidates = append(candidates, adjusted)
			}
		}
	}

	// 5. Дедупликация по календарному дню и сортировка по возрастанию
	dates := dedupeAndSort(candidates)

	// 6. Маршрут есть, а предлагать нечего
	if len(dates) == 0 {
		uc.logger.Info("GetAvailableDates: postcode=%q matched %d entries but no dates in window", req.Postcode, len(entries))
		return nil, ErrNoDatesInWindow
	}

	uc.logger.Info("GetAvailableDates: postcode=%q -> %d dates", req.Postcode, len(dates))

	return &Response{Dates: dates}, nil
}
