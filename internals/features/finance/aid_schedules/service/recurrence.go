// file: internals/features/finance/aid_schedules/service/recurrence.go
package service

import (
	"time"

	"faithtracker_backend/internals/helpers/dbtime"
)

// Frekuensi jadwal bantuan.
const (
	FreqOneTime  = "one_time"
	FreqWeekly   = "weekly"
	FreqMonthly  = "monthly"
	FreqAnnually = "annually"
)

// RecurrenceRule: aturan kambuhan murni-nilai, lepas dari baris DB supaya
// gampang diuji. Field opsional hanya terisi untuk frekuensi yang memakainya.
type RecurrenceRule struct {
	Frequency   string
	StartDate   time.Time
	EndDate     *time.Time
	DayOfWeek   *time.Weekday // weekly
	DayOfMonth  *int          // monthly (1..31, di-clamp ke panjang bulan)
	MonthOfYear *time.Month   // annually (hari diambil dari StartDate)
}

// ended: kandidat melewati end_date ⇒ jadwal selesai (hasil normal, bukan error).
func (r RecurrenceRule) ended(candidate time.Time, loc *time.Location) bool {
	if r.EndDate == nil {
		return false
	}
	return candidate.After(dbtime.StartOfDay(*r.EndDate, loc))
}

// NextOccurrence: tanggal kejadian pertama SETELAH after (dan tidak sebelum
// start_date). ok=false artinya jadwal sudah berakhir. Murni kalender: clamp
// ke panjang bulan, 29 Feb → 28 Feb di tahun non-kabisat.
func NextOccurrence(r RecurrenceRule, after time.Time, loc *time.Location) (time.Time, bool) {
	start := dbtime.StartOfDay(r.StartDate, loc)
	base := dbtime.AddDays(after, 1, loc) // kandidat paling awal: sehari setelah after
	if base.Before(start) {
		base = start
	}

	switch r.Frequency {
	case FreqOneTime:
		// satu kejadian: start_date itu sendiri
		if base.After(start) {
			return time.Time{}, false
		}
		return start, true

	case FreqWeekly:
		if r.DayOfWeek == nil {
			return time.Time{}, false
		}
		d := base
		for d.Weekday() != *r.DayOfWeek {
			d = dbtime.AddDays(d, 1, loc)
		}
		if r.ended(d, loc) {
			return time.Time{}, false
		}
		return d, true

	case FreqMonthly:
		if r.DayOfMonth == nil {
			return time.Time{}, false
		}
		y, m := base.Year(), base.Month()
		for i := 0; i < 13; i++ {
			day := clampDay(*r.DayOfMonth, y, m)
			cand := time.Date(y, m, day, 0, 0, 0, 0, loc)
			if !cand.Before(base) {
				if r.ended(cand, loc) {
					return time.Time{}, false
				}
				return cand, true
			}
			m++
			if m > time.December {
				m = time.January
				y++
			}
		}
		return time.Time{}, false

	case FreqAnnually:
		if r.MonthOfYear == nil {
			return time.Time{}, false
		}
		day := start.Day()
		for y := base.Year(); y <= base.Year()+1; y++ {
			cand := time.Date(y, *r.MonthOfYear, clampDay(day, y, *r.MonthOfYear), 0, 0, 0, 0, loc)
			if !cand.Before(base) {
				if r.ended(cand, loc) {
					return time.Time{}, false
				}
				return cand, true
			}
		}
		return time.Time{}, false
	}

	return time.Time{}, false
}

// InitialOccurrence: kejadian pertama, selalu ≥ start_date (jadwal weekly yang
// mulai Rabu dengan day_of_week Jumat jatuh pertama kali di Jumat yang sama).
func InitialOccurrence(r RecurrenceRule, loc *time.Location) (time.Time, bool) {
	dayBefore := dbtime.AddDays(r.StartDate, -1, loc)
	return NextOccurrence(r, dayBefore, loc)
}

// Advance: kejadian berikut setelah penyaluran. Basis maju = max(distributedOn,
// next_occurrence lama) supaya next_occurrence monoton tidak-menurun walau
// penyaluran dicatat terlambat atau lebih awal.
func Advance(r RecurrenceRule, current, distributedOn time.Time, loc *time.Location) (time.Time, bool) {
	base := dbtime.StartOfDay(current, loc)
	dist := dbtime.StartOfDay(distributedOn, loc)
	if dist.After(base) {
		base = dist
	}
	return NextOccurrence(r, base, loc)
}

// DaysOverdue: berapa hari next_occurrence sudah lewat; 0 jika belum jatuh tempo.
func DaysOverdue(next, now time.Time, loc *time.Location) int {
	d := dbtime.DaysBetween(next, now, loc)
	if d < 0 {
		return 0
	}
	return d
}

func clampDay(day, year int, month time.Month) int {
	if max := dbtime.DaysInMonth(year, month); day > max {
		return max
	}
	return day
}
