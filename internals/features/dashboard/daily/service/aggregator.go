// file: internals/features/dashboard/daily/service/aggregator.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	stageModel "faithtracker_backend/internals/features/care/follow_up_stages/model"
	aidModel "faithtracker_backend/internals/features/finance/aid_schedules/model"
	memberModel "faithtracker_backend/internals/features/members/members/model"
	"faithtracker_backend/internals/helpers/dbtime"
)

// TaskItem: satu baris tugas di daily view.
type TaskItem struct {
	MemberID    uuid.UUID `json:"member_id"`
	MemberName  string    `json:"member_name"`
	DueDate     string    `json:"due_date"`
	DaysOverdue int       `json:"days_overdue"`
	Label       string    `json:"label,omitempty"`
	RefID       uuid.UUID `json:"ref_id,omitempty"` // stage/schedule/event yang jadi sumber
	AmountIDR   *int64    `json:"amount_idr,omitempty"`
}

// AttentionItem: jemaat yang butuh perhatian karena status engagement.
type AttentionItem struct {
	MemberID         uuid.UUID `json:"member_id"`
	MemberName       string    `json:"member_name"`
	DaysSinceContact *int      `json:"days_since_contact,omitempty"`
}

// DailyView: potret tugas pastoral satu campus pada satu hari.
type DailyView struct {
	CampusID uuid.UUID `json:"campus_id"`
	ViewDate string    `json:"view_date"`
	Timezone string    `json:"timezone"`

	BirthdaysToday    []TaskItem `json:"birthdays_today"`
	BirthdaysUpcoming []TaskItem `json:"birthdays_upcoming"`
	GriefDueToday     []TaskItem `json:"grief_due_today"`
	FollowUpsOverdue  []TaskItem `json:"follow_ups_overdue"`
	FinancialAidDue   []TaskItem `json:"financial_aid_due"`

	AtRiskMembers       []AttentionItem `json:"at_risk_members"`
	DisconnectedMembers []AttentionItem `json:"disconnected_members"`
}

const dateLayout = "2006-01-02"
const birthdayLookaheadDays = 7

// AssembleDailyView murni: bekerja di atas slice hasil load controller + snapshot
// konfigurasi + "sekarang". Tidak menyentuh DB, tidak menyentuh clock.
//
// birthdayDone: member yang ulang tahunnya tahun ini sudah ditangani
// (event birthday completed/ignored) — dikeluarkan dari daftar ulang tahun.
//
// Stage grief yang jatuh tempo HARI INI sengaja muncul dua kali: di
// grief_due_today dan di follow_ups_overdue. Redundansi dashboard yang disengaja.
func AssembleDailyView(
	snap *careSettingService.Snapshot,
	now time.Time,
	members []memberModel.MemberModel,
	stages []stageModel.FollowUpStageModel,
	schedules []aidModel.AidScheduleModel,
	birthdayDone map[uuid.UUID]bool,
) DailyView {
	loc := snap.Location
	today := dbtime.StartOfDay(now, loc)

	view := DailyView{
		CampusID: snap.CampusID,
		ViewDate: today.Format(dateLayout),
		Timezone: snap.Timezone,

		BirthdaysToday:    []TaskItem{},
		BirthdaysUpcoming: []TaskItem{},
		GriefDueToday:     []TaskItem{},
		FollowUpsOverdue:  []TaskItem{},
		FinancialAidDue:   []TaskItem{},

		AtRiskMembers:       []AttentionItem{},
		DisconnectedMembers: []AttentionItem{},
	}

	names := make(map[uuid.UUID]string, len(members))
	for _, m := range members {
		names[m.MemberID] = m.MemberFullName
	}

	/* ===== Ulang tahun (bulan-hari, lepas dari tahun lahir) ===== */
	for _, m := range members {
		if m.MemberBirthDate == nil || birthdayDone[m.MemberID] {
			continue
		}
		birth := time.Time(*m.MemberBirthDate)

		// proyeksikan ke tahun ini; kalau sudah lewat jendela, coba tahun depan
		// (menjangkau pergantian tahun: lahir awal Januari dilihat akhir Desember)
		next := dbtime.AnniversaryInYear(birth, today.Year(), loc)
		if next.Before(today) {
			next = dbtime.AnniversaryInYear(birth, today.Year()+1, loc)
		}

		diff := dbtime.DaysBetween(today, next, loc)
		item := TaskItem{
			MemberID:   m.MemberID,
			MemberName: m.MemberFullName,
			DueDate:    next.Format(dateLayout),
			Label:      "birthday",
		}
		switch {
		case diff == 0:
			if IsVisible(careSettingService.TaskBirthday, next, now, snap, false, false) {
				view.BirthdaysToday = append(view.BirthdaysToday, item)
			}
		case diff > 0 && diff <= birthdayLookaheadDays:
			view.BirthdaysUpcoming = append(view.BirthdaysUpcoming, item)
		}
	}

	/* ===== Tahap follow-up (grief + accident) ===== */
	for _, s := range stages {
		scheduled := dbtime.StartOfDay(time.Time(s.FollowUpStageScheduledDate), loc)
		if scheduled.After(today) {
			continue
		}

		task := careSettingService.TaskGriefSupport
		if s.FollowUpStageKind == stageModel.StageKindAccident {
			task = careSettingService.TaskAccident
		}
		if !IsVisible(task, scheduled, now, snap, s.FollowUpStageCompleted, false) {
			continue
		}

		item := TaskItem{
			MemberID:    s.FollowUpStageMemberID,
			MemberName:  names[s.FollowUpStageMemberID],
			DueDate:     scheduled.Format(dateLayout),
			DaysOverdue: dbtime.DaysBetween(scheduled, today, loc),
			Label:       s.FollowUpStageLabel,
			RefID:       s.FollowUpStageID,
		}

		if s.FollowUpStageKind == stageModel.StageKindGrief && scheduled.Equal(today) {
			view.GriefDueToday = append(view.GriefDueToday, item)
		}
		view.FollowUpsOverdue = append(view.FollowUpsOverdue, item)
	}

	/* ===== Bantuan keuangan jatuh tempo ===== */
	for _, s := range schedules {
		if s.AidScheduleStatus != aidModel.StatusActive || s.AidScheduleNextOccurrence == nil {
			continue
		}
		next := dbtime.StartOfDay(time.Time(*s.AidScheduleNextOccurrence), loc)
		if next.After(today) {
			continue
		}
		if !IsVisible(careSettingService.TaskFinancialAid, next, now, snap, false, false) {
			continue
		}
		amount := s.AidScheduleAmountIDR
		view.FinancialAidDue = append(view.FinancialAidDue, TaskItem{
			MemberID:    s.AidScheduleMemberID,
			MemberName:  names[s.AidScheduleMemberID],
			DueDate:     next.Format(dateLayout),
			DaysOverdue: dbtime.DaysBetween(next, today, loc),
			Label:       s.AidScheduleFrequency,
			RefID:       s.AidScheduleID,
			AmountIDR:   &amount,
		})
	}

	/* ===== Jemaat yang butuh perhatian (tidak pernah di-write-off) ===== */
	for _, m := range members {
		item := AttentionItem{
			MemberID:         m.MemberID,
			MemberName:       m.MemberFullName,
			DaysSinceContact: m.MemberDaysSinceContact,
		}
		switch m.MemberEngagementStatus {
		case "at_risk":
			view.AtRiskMembers = append(view.AtRiskMembers, item)
		case "disconnected":
			view.DisconnectedMembers = append(view.DisconnectedMembers, item)
		}
	}

	/* ===== Urutan deterministik: tanggal naik, lalu nama ===== */
	sortTasks(view.BirthdaysToday)
	sortTasks(view.BirthdaysUpcoming)
	sortTasks(view.GriefDueToday)
	sortTasks(view.FollowUpsOverdue)
	sortTasks(view.FinancialAidDue)
	sortAttention(view.AtRiskMembers)
	sortAttention(view.DisconnectedMembers)

	return view
}

func sortTasks(items []TaskItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DueDate != items[j].DueDate {
			return items[i].DueDate < items[j].DueDate
		}
		return items[i].MemberName < items[j].MemberName
	})
}

func sortAttention(items []AttentionItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MemberName < items[j].MemberName
	})
}
