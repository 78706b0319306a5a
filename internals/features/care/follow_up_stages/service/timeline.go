// file: internals/features/care/follow_up_stages/service/timeline.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"faithtracker_backend/internals/features/care/follow_up_stages/model"
	"faithtracker_backend/internals/helpers/dbtime"
)

// Label default per kind; urutan label = urutan offset.
var (
	GriefLabels = []string{
		"1_week", "2_weeks", "1_month", "3_months", "6_months", "1_year",
	}
	AccidentLabels = []string{
		"first_followup", "second_followup", "final_followup",
	}
)

// StageSpec: satu tahap hasil generator, belum terikat DB.
type StageSpec struct {
	No            int
	Label         string
	ScheduledDate time.Time
}

// GenerateStages murni: scheduled[i] = anchor + offsets[i] hari kalender di loc.
// Offsets diasumsikan sudah tervalidasi (menaik ketat) di layer konfigurasi;
// panjang label harus sama dengan panjang offset.
func GenerateStages(anchor time.Time, offsets []int, labels []string, loc *time.Location) ([]StageSpec, error) {
	if len(offsets) != len(labels) {
		return nil, fmt.Errorf("offset (%d) dan label (%d) tidak sejodoh", len(offsets), len(labels))
	}
	out := make([]StageSpec, 0, len(offsets))
	for i, off := range offsets {
		out = append(out, StageSpec{
			No:            i + 1,
			Label:         labels[i],
			ScheduledDate: dbtime.AddDays(anchor, off, loc),
		})
	}
	return out, nil
}

// SpawnForEvent membuat baris tahap untuk satu event jangkar dalam tx pemanggil.
// Upsert-guarded lewat unique (care_event_id, stage_no) + DoNothing: retry
// pembuatan event tidak pernah menggandakan timeline.
func SpawnForEvent(
	tx *gorm.DB,
	campusID, memberID, careEventID uuid.UUID,
	kind string,
	anchor time.Time,
	offsets []int,
	labels []string,
	loc *time.Location,
) error {
	specs, err := GenerateStages(anchor, offsets, labels, loc)
	if err != nil {
		return err
	}

	rows := make([]model.FollowUpStageModel, 0, len(specs))
	for _, s := range specs {
		rows = append(rows, model.FollowUpStageModel{
			FollowUpStageCampusID:      campusID,
			FollowUpStageMemberID:      memberID,
			FollowUpStageCareEventID:   careEventID,
			FollowUpStageKind:          kind,
			FollowUpStageNo:            s.No,
			FollowUpStageLabel:         s.Label,
			FollowUpStageScheduledDate: datatypes.Date(s.ScheduledDate),
		})
	}

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "follow_up_stage_care_event_id"},
			{Name: "follow_up_stage_no"},
		},
		DoNothing: true,
	}).Create(&rows).Error
}
