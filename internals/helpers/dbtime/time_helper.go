// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nama locals mengikuti yg di-set di middleware AuthJWT
const (
	LocCampusTimezone = "campus_timezone" // string, misal "Asia/Jakarta"
	LocCampusLoc      = "campus_loc"      // *time.Location
)

const FallbackTimezone = "Asia/Jakarta"

// Ambil *time.Location campus aktif:
// 1) Prioritas: c.Locals("campus_loc") yang diisi middleware
// 2) Kalau belum ada: coba baca "campus_timezone" (string) lalu LoadLocation
// 3) Fallback: Asia/Jakarta
// 4) Fallback terakhir: time.UTC
func GetCampusLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return time.UTC
	}

	if v := c.Locals(LocCampusLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	if v := c.Locals(LocCampusTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			if loc, err := time.LoadLocation(strings.TrimSpace(s)); err == nil {
				// cache ke locals biar next call lebih murah
				c.Locals(LocCampusLoc, loc)
				return loc
			}
		}
	}

	if loc, err := time.LoadLocation(FallbackTimezone); err == nil {
		c.Locals(LocCampusLoc, loc)
		return loc
	}

	return time.UTC
}

// NowInCampus = "sekarang" menurut timezone campus. Semua hitungan "hari ini"
// WAJIB lewat sini, jangan time.Now() polos (server bisa UTC, salah sehari di
// sekitar tengah malam).
func NowInCampus(c *fiber.Ctx) time.Time {
	return time.Now().In(GetCampusLocation(c))
}

/* ===============================
   Aritmetika tanggal (timezone-explicit)
=================================*/

// StartOfDay memotong t ke 00:00:00 menurut loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// Today = awal hari ini menurut loc.
func Today(loc *time.Location) time.Time {
	return StartOfDay(time.Now(), loc)
}

// AddDays menambah n hari kalender (bukan n*24 jam mentah) menurut loc.
func AddDays(t time.Time, n int, loc *time.Location) time.Time {
	d := StartOfDay(t, loc)
	return time.Date(d.Year(), d.Month(), d.Day()+n, 0, 0, 0, 0, loc)
}

// DaysBetween menghitung selisih hari kalender utuh from → to menurut loc.
// Hasil negatif kalau to sebelum from. Round (bukan truncate) supaya aman
// terhadap pergeseran DST di timezone yang memakainya.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	f := StartOfDay(from, loc)
	t := StartOfDay(to, loc)
	return int(math.Round(t.Sub(f).Hours() / 24))
}

// DateEqual: apakah a dan b jatuh di tanggal kalender yang sama menurut loc.
func DateEqual(a, b time.Time, loc *time.Location) bool {
	sa := StartOfDay(a, loc)
	sb := StartOfDay(b, loc)
	return sa.Equal(sb)
}

// AnniversaryInYear memproyeksikan tanggal (ulang tahun, hari peringatan) ke
// tahun tertentu. 29 Feb dirayakan 28 Feb di tahun non-kabisat.
func AnniversaryInYear(anchor time.Time, year int, loc *time.Location) time.Time {
	month := anchor.Month()
	day := anchor.Day()
	if month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth: jumlah hari pada bulan tsb (leap-aware).
func DaysInMonth(year int, month time.Month) int {
	// hari ke-0 bulan berikutnya = hari terakhir bulan ini
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
