// file: internals/features/dashboard/digest/service/digest.go
package service

import (
	"fmt"
	"log"
	"strings"

	daily "faithtracker_backend/internals/features/dashboard/daily/service"
)

// WaSender: port pengiriman WhatsApp. Pengiriman sesungguhnya adalah
// kolaborator eksternal; jaminan delivery di luar tanggung jawab engine.
type WaSender interface {
	Send(phoneNumber, text string) error
}

// LogWaSender: implementasi bawaan yang hanya menulis ke log. Dipakai di
// lingkungan tanpa gateway WhatsApp.
type LogWaSender struct{}

func (LogWaSender) Send(phoneNumber, text string) error {
	log.Printf("[DIGEST] wa→%s:\n%s", phoneNumber, text)
	return nil
}

// BuildDigestText merangkum daily view jadi teks digest pendek siap kirim.
func BuildDigestText(view daily.DailyView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Ringkasan pelayanan %s\n", view.ViewDate)

	lines := 0
	section := func(title string, n int) {
		if n > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", title, n)
			lines++
		}
	}
	section("Ulang tahun hari ini", len(view.BirthdaysToday))
	section("Ulang tahun 7 hari ke depan", len(view.BirthdaysUpcoming))
	section("Pendampingan duka hari ini", len(view.GriefDueToday))
	section("Follow-up menunggak", len(view.FollowUpsOverdue))
	section("Bantuan keuangan jatuh tempo", len(view.FinancialAidDue))
	section("Jemaat berisiko renggang", len(view.AtRiskMembers))
	section("Jemaat terputus", len(view.DisconnectedMembers))

	if lines == 0 {
		b.WriteString("Tidak ada tugas hari ini 🙌\n")
	}

	for _, t := range view.BirthdaysToday {
		fmt.Fprintf(&b, "🎂 %s\n", t.MemberName)
	}
	for _, t := range view.GriefDueToday {
		fmt.Fprintf(&b, "🕊 %s (%s)\n", t.MemberName, t.Label)
	}

	return b.String()
}
