package domain

import "time"

// RecurrenceRule is the interval pattern used to project a schedule entry's
// base date forward to the next occurrence
type RecurrenceRule string

const (
	// Recurrence4Weekly advances in fixed 28-day steps
	Recurrence4Weekly RecurrenceRule = "4_WEEKLY"

	// RecurrenceMonthlySameDay advances one calendar month at a time,
	// keeping the day of month where the target month allows it
	RecurrenceMonthlySameDay RecurrenceRule = "MONTHLY_SAME_DAY"
)

// MearePrefixToken marks the schedule entry reserved for the Meare
// locality. The token never prefix-matches a real postcode, so the entry
// is only reachable through the Meare address override.
const MearePrefixToken = "BA6-MEARE"

// ScheduleEntry is one row of the round schedule: the postcode areas a
// round covers, the dates the round was anchored on, and how those dates
// repeat. Externally curated reference data, never mutated at runtime.
type ScheduleEntry struct {
	PostcodePrefixes []string
	BaseDates        []string // YYYY-MM-DD
	Recurrence       RecurrenceRule
}

// IsMeareOnly returns true if this entry is the dedicated Meare entry
func (e ScheduleEntry) IsMeareOnly() bool {
	for _, prefix := range e.PostcodePrefixes {
		if prefix == MearePrefixToken {
			return true
		}
	}
	return false
}

// BankHolidayCalendar maps a year to that year's bank holiday dates in
// YYYY-MM-DD form. Injected reference data: the engine must not hard-code
// years, so new years are data-only additions.
type BankHolidayCalendar map[int][]string

// Contains reports whether the given date is a bank holiday
func (c BankHolidayCalendar) Contains(t time.Time) bool {
	day := t.Format(DateFormat)
	for _, holiday := range c[t.Year()] {
		if holiday == day {
			return true
		}
	}
	return false
}

// ScheduleCatalog is the read-only availability reference data. Loaded
// once at startup and never mutated for the life of the process.
type ScheduleCatalog struct {
	Entries      []ScheduleEntry
	BankHolidays BankHolidayCalendar
}
