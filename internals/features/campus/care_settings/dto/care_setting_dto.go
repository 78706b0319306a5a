// file: internals/features/campus/care_settings/dto/care_setting_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"faithtracker_backend/internals/features/campus/care_settings/model"
)

// Update (partial). Validasi lintas-field (at_risk < inactive, offsets menaik)
// dijalankan service setelah merge, bukan di tag.
type CareSettingUpdateDTO struct {
	CareSettingAtRiskDays   *int `json:"care_setting_at_risk_days,omitempty" validate:"omitempty,min=1"`
	CareSettingInactiveDays *int `json:"care_setting_inactive_days,omitempty" validate:"omitempty,min=2"`

	CareSettingWriteoffBirthdayDays     *int `json:"care_setting_writeoff_birthday_days,omitempty" validate:"omitempty,min=0"`
	CareSettingWriteoffGriefDays        *int `json:"care_setting_writeoff_grief_days,omitempty" validate:"omitempty,min=0"`
	CareSettingWriteoffAccidentDays     *int `json:"care_setting_writeoff_accident_days,omitempty" validate:"omitempty,min=0"`
	CareSettingWriteoffFinancialAidDays *int `json:"care_setting_writeoff_financial_aid_days,omitempty" validate:"omitempty,min=0"`

	CareSettingGriefOffsets    []int64 `json:"care_setting_grief_offsets,omitempty" validate:"omitempty,len=6"`
	CareSettingAccidentOffsets []int64 `json:"care_setting_accident_offsets,omitempty" validate:"omitempty,len=3"`
}

func ApplyCareSettingUpdate(m *model.CareSettingModel, in CareSettingUpdateDTO) {
	if in.CareSettingAtRiskDays != nil {
		m.CareSettingAtRiskDays = *in.CareSettingAtRiskDays
	}
	if in.CareSettingInactiveDays != nil {
		m.CareSettingInactiveDays = *in.CareSettingInactiveDays
	}
	if in.CareSettingWriteoffBirthdayDays != nil {
		m.CareSettingWriteoffBirthdayDays = *in.CareSettingWriteoffBirthdayDays
	}
	if in.CareSettingWriteoffGriefDays != nil {
		m.CareSettingWriteoffGriefDays = *in.CareSettingWriteoffGriefDays
	}
	if in.CareSettingWriteoffAccidentDays != nil {
		m.CareSettingWriteoffAccidentDays = *in.CareSettingWriteoffAccidentDays
	}
	if in.CareSettingWriteoffFinancialAidDays != nil {
		m.CareSettingWriteoffFinancialAidDays = *in.CareSettingWriteoffFinancialAidDays
	}
	if in.CareSettingGriefOffsets != nil {
		m.CareSettingGriefOffsets = pq.Int64Array(in.CareSettingGriefOffsets)
	}
	if in.CareSettingAccidentOffsets != nil {
		m.CareSettingAccidentOffsets = pq.Int64Array(in.CareSettingAccidentOffsets)
	}
}

// Response
type CareSettingResponse struct {
	CareSettingID       uuid.UUID `json:"care_setting_id"`
	CareSettingCampusID uuid.UUID `json:"care_setting_campus_id"`

	CareSettingAtRiskDays   int `json:"care_setting_at_risk_days"`
	CareSettingInactiveDays int `json:"care_setting_inactive_days"`

	CareSettingWriteoffBirthdayDays     int `json:"care_setting_writeoff_birthday_days"`
	CareSettingWriteoffGriefDays        int `json:"care_setting_writeoff_grief_days"`
	CareSettingWriteoffAccidentDays     int `json:"care_setting_writeoff_accident_days"`
	CareSettingWriteoffFinancialAidDays int `json:"care_setting_writeoff_financial_aid_days"`

	CareSettingGriefOffsets    []int64 `json:"care_setting_grief_offsets"`
	CareSettingAccidentOffsets []int64 `json:"care_setting_accident_offsets"`
}

func ToCareSettingResponse(m model.CareSettingModel) CareSettingResponse {
	return CareSettingResponse{
		CareSettingID:                       m.CareSettingID,
		CareSettingCampusID:                 m.CareSettingCampusID,
		CareSettingAtRiskDays:               m.CareSettingAtRiskDays,
		CareSettingInactiveDays:             m.CareSettingInactiveDays,
		CareSettingWriteoffBirthdayDays:     m.CareSettingWriteoffBirthdayDays,
		CareSettingWriteoffGriefDays:        m.CareSettingWriteoffGriefDays,
		CareSettingWriteoffAccidentDays:     m.CareSettingWriteoffAccidentDays,
		CareSettingWriteoffFinancialAidDays: m.CareSettingWriteoffFinancialAidDays,
		CareSettingGriefOffsets:             []int64(m.CareSettingGriefOffsets),
		CareSettingAccidentOffsets:          []int64(m.CareSettingAccidentOffsets),
	}
}
