// file: internals/helpers/dbtime/time_helper_test.go
package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween_WholeCalendarDays(t *testing.T) {
	loc := time.UTC
	from := time.Date(2025, 6, 1, 23, 50, 0, 0, loc)
	to := time.Date(2025, 6, 2, 0, 10, 0, 0, loc)

	// beda 20 menit tapi sudah ganti tanggal → 1 hari
	assert.Equal(t, 1, DaysBetween(from, to, loc))
	assert.Equal(t, -1, DaysBetween(to, from, loc))
	assert.Equal(t, 0, DaysBetween(from, from, loc))
}

func TestDaysBetween_TimezoneMatters(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 22:00 UTC = 05:00 WIB besoknya
	a := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	b := time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(a, b, time.UTC))
	assert.Equal(t, 1, DaysBetween(a, b, jakarta))
	assert.Equal(t, 0, DaysBetween(a, time.Date(2025, 6, 1, 23, 0, 0, 0, time.UTC), time.UTC))
	// menurut Jakarta, 16:59 UTC masih 1 Juni tapi 17:01 UTC sudah 2 Juni
	assert.Equal(t, 1, DaysBetween(
		time.Date(2025, 6, 1, 16, 59, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 17, 1, 0, 0, time.UTC),
		jakarta))
}

func TestAddDays_CalendarArithmetic(t *testing.T) {
	loc := time.UTC
	d := time.Date(2024, 2, 27, 15, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, loc), AddDays(d, 2, loc), "kabisat")
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), AddDays(d, 3, loc))
	assert.Equal(t, time.Date(2024, 2, 26, 0, 0, 0, 0, loc), AddDays(d, -1, loc))
}

func TestAnniversaryInYear_LeapDay(t *testing.T) {
	loc := time.UTC
	leapBirth := time.Date(2000, 2, 29, 0, 0, 0, 0, loc)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, loc), AnniversaryInYear(leapBirth, 2024, loc))
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, loc), AnniversaryInYear(leapBirth, 2025, loc), "non-kabisat dirayakan 28 Feb")

	normal := time.Date(1990, 7, 17, 0, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 7, 17, 0, 0, 0, 0, loc), AnniversaryInYear(normal, 2025, loc))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(2025))
	assert.False(t, IsLeapYear(1900), "aturan abad")
}
