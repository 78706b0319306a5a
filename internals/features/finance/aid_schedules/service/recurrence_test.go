// file: internals/features/finance/aid_schedules/service/recurrence_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekday(w time.Weekday) *time.Weekday { return &w }
func intp(n int) *int                      { return &n }
func monthp(m time.Month) *time.Month      { return &m }
func datep(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestWeekly_FirstOccurrenceOnOrAfterStart(t *testing.T) {
	// mulai Rabu 1 Jan 2025, jadwal tiap Jumat → pertama kali Jumat 3 Jan
	rule := RecurrenceRule{
		Frequency: FreqWeekly,
		StartDate: date(2025, 1, 1),
		DayOfWeek: weekday(time.Friday),
	}

	first, ok := InitialOccurrence(rule, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2025, 1, 3), first)

	next, ok := Advance(rule, first, first, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2025, 1, 10), next)
}

func TestMonthly_ClampsToMonthLength(t *testing.T) {
	// tanggal 31 tiap bulan: Jan 31 → Feb 29 (kabisat) → Mar 31
	rule := RecurrenceRule{
		Frequency:  FreqMonthly,
		StartDate:  date(2024, 1, 31),
		DayOfMonth: intp(31),
	}

	first, ok := InitialOccurrence(rule, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2024, 1, 31), first)

	second, ok := Advance(rule, first, first, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2024, 2, 29), second, "Feb tahun kabisat di-clamp ke 29")

	third, ok := Advance(rule, second, second, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2024, 3, 31), third, "balik ke tanggal 31 saat bulan cukup panjang")
}

func TestMonthly_ClampsToFeb28OffLeap(t *testing.T) {
	rule := RecurrenceRule{
		Frequency:  FreqMonthly,
		StartDate:  date(2025, 1, 31),
		DayOfMonth: intp(31),
	}

	first, _ := InitialOccurrence(rule, time.UTC)
	second, ok := Advance(rule, first, first, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2025, 2, 28), second)
}

func TestAnnual_LeapDayClamp(t *testing.T) {
	// mulai 29 Feb 2024, tiap Februari: tahun non-kabisat jatuh 28 Feb
	rule := RecurrenceRule{
		Frequency:   FreqAnnually,
		StartDate:   date(2024, 2, 29),
		MonthOfYear: monthp(time.February),
	}

	first, ok := InitialOccurrence(rule, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2024, 2, 29), first)

	second, ok := Advance(rule, first, first, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2025, 2, 28), second)
}

func TestEndDate_SchedulesEnd(t *testing.T) {
	rule := RecurrenceRule{
		Frequency: FreqWeekly,
		StartDate: date(2025, 1, 1),
		EndDate:   datep(2025, 1, 5),
		DayOfWeek: weekday(time.Friday),
	}

	first, ok := InitialOccurrence(rule, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2025, 1, 3), first)

	// kejadian berikutnya (10 Jan) melewati end_date → selesai, bukan error
	_, ok = Advance(rule, first, first, time.UTC)
	assert.False(t, ok)
}

func TestOneTime_SingleOccurrence(t *testing.T) {
	rule := RecurrenceRule{
		Frequency: FreqOneTime,
		StartDate: date(2025, 5, 17),
	}

	first, ok := InitialOccurrence(rule, time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2025, 5, 17), first)

	_, ok = Advance(rule, first, first, time.UTC)
	assert.False(t, ok, "one_time berhenti setelah sekali")
}

func TestAdvance_MonotonicNonDecreasing(t *testing.T) {
	rule := RecurrenceRule{
		Frequency:  FreqMonthly,
		StartDate:  date(2024, 1, 31),
		DayOfMonth: intp(31),
	}
	current := date(2024, 2, 29)

	// penyaluran dicatat mundur (tanggal lama) → basis tetap next_occurrence
	next, ok := Advance(rule, current, date(2024, 1, 5), time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2024, 3, 31), next)
	assert.True(t, next.After(current))

	// penyaluran terlambat jauh → lompat melewati kejadian yang terlewat
	next, ok = Advance(rule, current, date(2024, 4, 15), time.UTC)
	require.True(t, ok)
	assert.Equal(t, date(2024, 4, 30), next)
	assert.True(t, next.After(current))
}

func TestDaysOverdue(t *testing.T) {
	next := date(2025, 1, 3)

	assert.Equal(t, 0, DaysOverdue(next, date(2025, 1, 1), time.UTC), "belum jatuh tempo")
	assert.Equal(t, 0, DaysOverdue(next, date(2025, 1, 3), time.UTC), "pas jatuh tempo")
	assert.Equal(t, 2, DaysOverdue(next, date(2025, 1, 5), time.UTC))
}
