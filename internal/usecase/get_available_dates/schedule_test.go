package get_available_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalonwc/AWC-BookingService/internal/domain"
)

func date(value string) time.Time {
	t, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func testEntries() []domain.ScheduleEntry {
	return []domain.ScheduleEntry{
		{
			PostcodePrefixes: []string{"BA6", "BA16"},
			BaseDates:        []string{"2025-03-11"},
			Recurrence:       domain.Recurrence4Weekly,
		},
		{
			PostcodePrefixes: []string{domain.MearePrefixToken},
			BaseDates:        []string{"2025-03-20"},
			Recurrence:       domain.RecurrenceMonthlySameDay,
		},
		{
			PostcodePrefixes: []string{"BS3", "BS4"},
			BaseDates:        []string{"2025-03-12"},
			Recurrence:       domain.Recurrence4Weekly,
		},
	}
}

func TestMatchEntries(t *testing.T) {
	entries := testEntries()

	tests := []struct {
		name         string
		postcode     string
		addressLine1 string
		wantPrefixes []string // первые префиксы ожидаемых записей
		wantErr      error
	}{
		{
			name:     "too short input is still in progress",
			postcode: "BS",
			wantErr:  ErrNeedMoreInput,
		},
		{
			name:     "empty postcode",
			postcode: "   ",
			wantErr:  ErrNeedMoreInput,
		},
		{
			name:         "three char prefix matches",
			postcode:     "BS4",
			wantPrefixes: []string{"BS3"},
		},
		{
			name:         "full postcode matches with normalisation",
			postcode:     "  bs4 3aa ",
			wantPrefixes: []string{"BS3"},
		},
		{
			name:     "three chars without a round is not yet a hard error",
			postcode: "TA1",
			wantErr:  ErrNeedMoreInput,
		},
		{
			name:     "four chars without a round is not covered",
			postcode: "TA1 2",
			wantErr:  ErrNotCovered,
		},
		{
			name:         "BA6 without meare uses the generic entry",
			postcode:     "BA6 8AB",
			addressLine1: "12 High Street, Glastonbury",
			wantPrefixes: []string{"BA6"},
		},
		{
			name:         "meare address resolves via the meare-only entry",
			postcode:     "BA6 9AA",
			addressLine1: "4 Meare Green",
			wantPrefixes: []string{domain.MearePrefixToken},
		},
		{
			name:         "meare match is case-insensitive",
			postcode:     "ba6 9aa",
			addressLine1: "THE OLD FORGE, MEARE",
			wantPrefixes: []string{domain.MearePrefixToken},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := matchEntries(entries, tt.postcode, tt.addressLine1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, matched, len(tt.wantPrefixes))
			for i, prefix := range tt.wantPrefixes {
				assert.Equal(t, prefix, matched[i].PostcodePrefixes[0])
			}
		})
	}
}

func TestMatchEntries_MeareTokenNeverPrefixMatches(t *testing.T) {
	// Даже индекс, начинающийся с "BA6-MEARE", не должен зацепить
	// Meare-запись через prefix-сопоставление: токен достижим только через
	// адресный override (а такой индекс к тому же длиннее лимита ввода)
	entries := []domain.ScheduleEntry{
		{PostcodePrefixes: []string{domain.MearePrefixToken}, BaseDates: []string{"2025-03-20"}, Recurrence: domain.Recurrence4Weekly},
	}

	_, err := matchEntries(entries, "BA6 9ZZ", "12 High Street")
	assert.ErrorIs(t, err, ErrNotCovered)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, isWeekend(date("2025-03-15")))  // суббота
	assert.True(t, isWeekend(date("2025-03-16")))  // воскресенье
	assert.False(t, isWeekend(date("2025-03-17"))) // понедельник
}

func TestNextWorkingDay(t *testing.T) {
	calendar := domain.BankHolidayCalendar{
		2025: {"2025-04-18", "2025-04-21", "2025-05-05"},
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"weekday stays put", "2025-03-11", "2025-03-11"},
		{"saturday shifts to monday", "2025-03-15", "2025-03-17"},
		{"sunday shifts to monday", "2025-03-16", "2025-03-17"},
		{"bank holiday monday shifts to tuesday", "2025-05-05", "2025-05-06"},
		// Страстная пятница → выходные → пасхальный понедельник → вторник
		{"holiday then weekend then holiday", "2025-04-18", "2025-04-22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextWorkingDay(date(tt.input), calendar)
			assert.Equal(t, tt.want, got.Format(domain.DateFormat))
		})
	}
}

func TestNextWorkingDay_UnlistedYearHasNoHolidays(t *testing.T) {
	// Календарь инжектируется: годы, которых в нём нет, праздников не имеют
	calendar := domain.BankHolidayCalendar{2025: {"2025-05-05"}}

	got := nextWorkingDay(date("2030-05-06"), calendar) // понедельник 2030
	assert.Equal(t, "2030-05-06", got.Format(domain.DateFormat))
}

func TestNextOccurrenceOnOrAfter(t *testing.T) {
	today := date("2025-03-10")

	tests := []struct {
		name     string
		baseDate string
		rule     domain.RecurrenceRule
		want     string
	}{
		{"future base date returned as is", "2025-03-20", domain.Recurrence4Weekly, "2025-03-20"},
		{"aligned base date lands on today", "2025-02-10", domain.Recurrence4Weekly, "2025-03-10"},
		{"four weekly steps 28 days", "2025-02-25", domain.Recurrence4Weekly, "2025-03-25"},
		{"monthly keeps day of month", "2025-01-15", domain.RecurrenceMonthlySameDay, "2025-03-15"},
		{"unknown rule falls back to 28 days", "2025-02-25", domain.RecurrenceRule("WEEKLY"), "2025-03-25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextOccurrenceOnOrAfter(tt.baseDate, tt.rule, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format(domain.DateFormat))
		})
	}
}

func TestNextOccurrenceOnOrAfter_MalformedDate(t *testing.T) {
	_, err := nextOccurrenceOnOrAfter("15/03/2025", domain.Recurrence4Weekly, date("2025-03-10"))
	assert.Error(t, err)
}

func TestWithinBookingWindow(t *testing.T) {
	today := date("2025-03-10")

	assert.False(t, withinBookingWindow(date("2025-03-10"), today), "same day is excluded")
	assert.True(t, withinBookingWindow(date("2025-03-11"), today), "tomorrow is the lower bound")
	assert.True(t, withinBookingWindow(date("2025-04-21"), today), "today+42 is the upper bound")
	assert.False(t, withinBookingWindow(date("2025-04-22"), today), "past the horizon")
	assert.False(t, withinBookingWindow(date("2025-03-01"), today), "past dates excluded")
}

func TestDedupeAndSort(t *testing.T) {
	dates := []time.Time{
		date("2025-03-20"),
		date("2025-03-12"),
		date("2025-03-20"),
		date("2025-03-11"),
	}

	got := dedupeAndSort(dates)

	require.Len(t, got, 3)
	assert.Equal(t, "2025-03-11", got[0].Format(domain.DateFormat))
	assert.Equal(t, "2025-03-12", got[1].Format(domain.DateFormat))
	assert.Equal(t, "2025-03-20", got[2].Format(domain.DateFormat))
}
