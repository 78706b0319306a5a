// file: internals/features/care/care_events/dto/care_event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"faithtracker_backend/internals/features/care/care_events/model"
)

const dateLayout = "2006-01-02"

/* ===============================
   Create (tagged union per type)
=================================*/

type CareEventCreateDTO struct {
	CareEventMemberID string `json:"care_event_member_id" validate:"required,uuid4"`
	CareEventType     string `json:"care_event_type" validate:"required,oneof=birthday grief_loss accident_illness financial_aid childbirth new_house regular_contact"`
	CareEventDate     string `json:"care_event_date" validate:"required,datetime=2006-01-02"`

	// grief_loss
	CareEventGriefRelationship *string `json:"care_event_grief_relationship,omitempty" validate:"omitempty,max=50"`
	CareEventDeceasedName      *string `json:"care_event_deceased_name,omitempty" validate:"omitempty,max=100"`

	// accident_illness
	CareEventHospitalName *string `json:"care_event_hospital_name,omitempty" validate:"omitempty,max=100"`
	CareEventDiagnosis    *string `json:"care_event_diagnosis,omitempty" validate:"omitempty,max=200"`

	// financial_aid
	CareEventAidAmountIDR *int64 `json:"care_event_aid_amount_idr,omitempty" validate:"omitempty,min=1"`

	CareEventNote *string `json:"care_event_note,omitempty"`
}

// ValidateVariant menegakkan kolom varian per jenis event: wajib untuk jenisnya,
// terlarang untuk jenis lain. Mengembalikan map field → pesan (gaya 422).
func (in CareEventCreateDTO) ValidateVariant() map[string][]string {
	errs := map[string][]string{}
	add := func(field, msg string) { errs[field] = append(errs[field], msg) }

	griefSet := in.CareEventGriefRelationship != nil || in.CareEventDeceasedName != nil
	accidentSet := in.CareEventHospitalName != nil || in.CareEventDiagnosis != nil
	aidSet := in.CareEventAidAmountIDR != nil

	switch in.CareEventType {
	case model.EventGriefLoss:
		if in.CareEventGriefRelationship == nil {
			add("care_event_grief_relationship", "wajib untuk grief_loss")
		}
		if in.CareEventDeceasedName == nil {
			add("care_event_deceased_name", "wajib untuk grief_loss")
		}
		if accidentSet {
			add("care_event_hospital_name", "tidak berlaku untuk grief_loss")
		}
		if aidSet {
			add("care_event_aid_amount_idr", "tidak berlaku untuk grief_loss")
		}
	case model.EventAccidentIllness:
		if in.CareEventHospitalName == nil {
			add("care_event_hospital_name", "wajib untuk accident_illness")
		}
		if griefSet {
			add("care_event_grief_relationship", "tidak berlaku untuk accident_illness")
		}
		if aidSet {
			add("care_event_aid_amount_idr", "tidak berlaku untuk accident_illness")
		}
	case model.EventFinancialAid:
		if in.CareEventAidAmountIDR == nil {
			add("care_event_aid_amount_idr", "wajib untuk financial_aid")
		}
		if griefSet {
			add("care_event_grief_relationship", "tidak berlaku untuk financial_aid")
		}
		if accidentSet {
			add("care_event_hospital_name", "tidak berlaku untuk financial_aid")
		}
	default:
		if griefSet {
			add("care_event_grief_relationship", "tidak berlaku untuk "+in.CareEventType)
		}
		if accidentSet {
			add("care_event_hospital_name", "tidak berlaku untuk "+in.CareEventType)
		}
		if aidSet {
			add("care_event_aid_amount_idr", "tidak berlaku untuk "+in.CareEventType)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func CareEventCreateDTOToModel(in CareEventCreateDTO, campusID uuid.UUID, loc *time.Location) (model.CareEventModel, error) {
	memberID, err := uuid.Parse(in.CareEventMemberID)
	if err != nil {
		return model.CareEventModel{}, err
	}
	t, err := time.ParseInLocation(dateLayout, in.CareEventDate, loc)
	if err != nil {
		return model.CareEventModel{}, err
	}

	return model.CareEventModel{
		CareEventCampusID:          campusID,
		CareEventMemberID:          memberID,
		CareEventType:              in.CareEventType,
		CareEventDate:              datatypes.Date(t),
		CareEventGriefRelationship: in.CareEventGriefRelationship,
		CareEventDeceasedName:      in.CareEventDeceasedName,
		CareEventHospitalName:      in.CareEventHospitalName,
		CareEventDiagnosis:         in.CareEventDiagnosis,
		CareEventAidAmountIDR:      in.CareEventAidAmountIDR,
		CareEventNote:              in.CareEventNote,
	}, nil
}

/* ===============================
   Response
=================================*/

type CareEventResponse struct {
	CareEventID                uuid.UUID  `json:"care_event_id"`
	CareEventMemberID          uuid.UUID  `json:"care_event_member_id"`
	CareEventType              string     `json:"care_event_type"`
	CareEventDate              string     `json:"care_event_date"`
	CareEventGriefRelationship *string    `json:"care_event_grief_relationship,omitempty"`
	CareEventDeceasedName      *string    `json:"care_event_deceased_name,omitempty"`
	CareEventHospitalName      *string    `json:"care_event_hospital_name,omitempty"`
	CareEventDiagnosis         *string    `json:"care_event_diagnosis,omitempty"`
	CareEventAidAmountIDR      *int64     `json:"care_event_aid_amount_idr,omitempty"`
	CareEventAidScheduleID     *uuid.UUID `json:"care_event_aid_schedule_id,omitempty"`
	CareEventNote              *string    `json:"care_event_note,omitempty"`
	CareEventCompleted         bool       `json:"care_event_completed"`
	CareEventCompletedAt       *time.Time `json:"care_event_completed_at,omitempty"`
	CareEventIgnored           bool       `json:"care_event_ignored"`
}

func ToCareEventResponse(m model.CareEventModel) CareEventResponse {
	return CareEventResponse{
		CareEventID:                m.CareEventID,
		CareEventMemberID:          m.CareEventMemberID,
		CareEventType:              m.CareEventType,
		CareEventDate:              time.Time(m.CareEventDate).Format(dateLayout),
		CareEventGriefRelationship: m.CareEventGriefRelationship,
		CareEventDeceasedName:      m.CareEventDeceasedName,
		CareEventHospitalName:      m.CareEventHospitalName,
		CareEventDiagnosis:         m.CareEventDiagnosis,
		CareEventAidAmountIDR:      m.CareEventAidAmountIDR,
		CareEventAidScheduleID:     m.CareEventAidScheduleID,
		CareEventNote:              m.CareEventNote,
		CareEventCompleted:         m.CareEventCompleted,
		CareEventCompletedAt:       m.CareEventCompletedAt,
		CareEventIgnored:           m.CareEventIgnored,
	}
}

func ToCareEventResponses(list []model.CareEventModel) []CareEventResponse {
	out := make([]CareEventResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToCareEventResponse(m))
	}
	return out
}
