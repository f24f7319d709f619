package get_available_dates

import (
	"sort"
	"strings"
	"time"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

// normalizePostcode приводит индекс к каноническому виду для сопоставления
func normalizePostcode(postcode string) string {
	return strings.ToUpper(strings.TrimSpace(postcode))
}

// isMeareAddress проверяет особый случай Meare: индекс BA6 при адресе,
// содержащем «meare». Такие адреса обслуживаются отдельным маршрутом, а не
// общим маршрутом BA6.
func isMeareAddress(normalizedPostcode, addressLine1 string) bool {
	return strings.HasPrefix(normalizedPostcode, "BA6") &&
		strings.Contains(strings.ToLower(addressLine1), "meare")
}

// matchEntries возвращает записи расписания, накрывающие индекс.
//
// Порядок шагов:
//  1. Нормализация индекса (trim + upper).
//  2. Короче 3 символов — ввод ещё идёт: ErrNeedMoreInput.
//  3. Адрес Meare → только запись с токеном BA6-MEARE, общие записи BA6
//     не рассматриваются вовсе.
//  4. Иначе — все записи, где хотя бы один префикс (кроме литерального
//     токена BA6-MEARE) является началом индекса.
//  5. Ничего не нашли: от 4 символов — ErrNotCovered, ровно 3 —
//     ErrNeedMoreInput (ещё не жёсткая ошибка).
func matchEntries(entries []domain.ScheduleEntry, postcode, addressLine1 string) ([]domain.ScheduleEntry, error) {
	normalized := normalizePostcode(postcode)

	if len(normalized) < domain.MinPostcodeLength {
		return nil, ErrNeedMoreInput
	}

	matched := make([]domain.ScheduleEntry, 0, 2)

	if isMeareAddress(normalized, addressLine1) {
		for _, entry := range entries {
			if entry.IsMeareOnly() {
				matched = append(matched, entry)
			}
		}
	} else {
		for _, entry := range entries {
			for _, prefix := range entry.PostcodePrefixes {
				if prefix == domain.MearePrefixToken {
					continue
				}
				if strings.HasPrefix(normalized, prefix) {
					matched = append(matched, entry)
					break
				}
			}
		}
	}

	if len(matched) == 0 {
		if len(normalized) >= domain.FullPostcodeLength {
			return nil, ErrNotCovered
		}
		return nil, ErrNeedMoreInput
	}

	return matched, nil
}

// isWeekend проверяет, что дата приходится на субботу или воскресенье
func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// nextWorkingDay возвращает первый рабочий день начиная с указанной даты
// (может вернуть её саму). Рабочий день — будний и не гос. праздник по
// переданному календарю.
func nextWorkingDay(t time.Time, calendar domain.BankHolidayCalendar) time.Time {
	for isWeekend(t) || calendar.Contains(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// nextOccurrenceOnOrAfter проецирует базовую дату записи вперёд до первого
// вхождения не раньше today.
//
// Продвижение итеративное: 4_WEEKLY шагает на 28 дней, MONTHLY_SAME_DAY на
// календарный месяц, нераспознанное правило откатывается к шагу 28 дней.
// Сложность O(прошедшие дни / интервал) — для реальных данных базовые даты
// лежат в пределах пары лет от «сегодня», и цикл дешёвый. Для произвольно
// старых дат понадобилась бы замкнутая формула по числу прошедших периодов.
func nextOccurrenceOnOrAfter(baseDate string, rule domain.RecurrenceRule, today time.Time) (time.Time, error) {
	occurrence, err := time.Parse(domain.DateFormat, baseDate)
	if err != nil {
		return time.Time{}, err
	}

	for occurrence.Before(today) {
		switch rule {
		case domain.RecurrenceMonthlySameDay:
			occurrence = occurrence.AddDate(0, 1, 0)
		default:
			occurrence = occurrence.AddDate(0, 0, domain.FourWeekIntervalDays)
		}
	}

	return occurrence, nil
}

// withinBookingWindow проверяет, что дата попадает в окно бронирования:
// не раньше завтра (день в день не предлагаем) и не позже today+42 дня
func withinBookingWindow(date, today time.Time) bool {
	tomorrow := today.AddDate(0, 0, 1)
	horizon := today.AddDate(0, 0, domain.BookingHorizonDays)
	return !date.Before(tomorrow) && !date.After(horizon)
}

// dedupeAndSort убирает дубли по календарному дню и сортирует по
// возрастанию
func dedupeAndSort(dates []time.Time) []time.Time {
	seen := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		seen[d.Format(domain.DateFormat)] = d
	}

	result := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		result = append(result, d)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Before(result[j])
	})

	return result
}

// dateOnly обнуляет время, оставляя только календарный день в UTC.
// Все сравнения дат в резолвере идут по календарным дням.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
