// file: internals/features/care/follow_up_stages/dto/follow_up_stage_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"faithtracker_backend/internals/features/care/follow_up_stages/model"
)

type FollowUpStageResponse struct {
	FollowUpStageID            uuid.UUID  `json:"follow_up_stage_id"`
	FollowUpStageMemberID      uuid.UUID  `json:"follow_up_stage_member_id"`
	FollowUpStageCareEventID   uuid.UUID  `json:"follow_up_stage_care_event_id"`
	FollowUpStageKind          string     `json:"follow_up_stage_kind"`
	FollowUpStageNo            int        `json:"follow_up_stage_no"`
	FollowUpStageLabel         string     `json:"follow_up_stage_label"`
	FollowUpStageScheduledDate string     `json:"follow_up_stage_scheduled_date"`
	FollowUpStageCompleted     bool       `json:"follow_up_stage_completed"`
	FollowUpStageCompletedAt   *time.Time `json:"follow_up_stage_completed_at,omitempty"`
}

func ToFollowUpStageResponse(m model.FollowUpStageModel) FollowUpStageResponse {
	return FollowUpStageResponse{
		FollowUpStageID:            m.FollowUpStageID,
		FollowUpStageMemberID:      m.FollowUpStageMemberID,
		FollowUpStageCareEventID:   m.FollowUpStageCareEventID,
		FollowUpStageKind:          m.FollowUpStageKind,
		FollowUpStageNo:            m.FollowUpStageNo,
		FollowUpStageLabel:         m.FollowUpStageLabel,
		FollowUpStageScheduledDate: time.Time(m.FollowUpStageScheduledDate).Format("2006-01-02"),
		FollowUpStageCompleted:     m.FollowUpStageCompleted,
		FollowUpStageCompletedAt:   m.FollowUpStageCompletedAt,
	}
}

func ToFollowUpStageResponses(list []model.FollowUpStageModel) []FollowUpStageResponse {
	out := make([]FollowUpStageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFollowUpStageResponse(m))
	}
	return out
}
