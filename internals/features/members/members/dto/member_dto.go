// file: internals/features/members/members/dto/member_dto.go
package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"faithtracker_backend/internals/features/members/members/model"
)

const dateLayout = "2006-01-02"

func parseDate(s string, loc *time.Location) (datatypes.Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("tanggal harus format YYYY-MM-DD: %q", s)
	}
	return datatypes.Date(t), nil
}

/* ===============================
   Create
=================================*/

type MemberCreateDTO struct {
	MemberFullName        string  `json:"member_full_name" validate:"required,max=100"`
	MemberPhone           *string `json:"member_phone,omitempty" validate:"omitempty,max=25"`
	MemberWhatsappNumber  *string `json:"member_whatsapp_number,omitempty" validate:"omitempty,max=25"`
	MemberAddress         *string `json:"member_address,omitempty"`
	MemberBirthDate       *string `json:"member_birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MemberLastContactDate *string `json:"member_last_contact_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func MemberCreateDTOToModel(in MemberCreateDTO, campusID uuid.UUID, loc *time.Location) (model.MemberModel, error) {
	m := model.MemberModel{
		MemberCampusID:       campusID,
		MemberFullName:       in.MemberFullName,
		MemberPhone:          in.MemberPhone,
		MemberWhatsappNumber: in.MemberWhatsappNumber,
		MemberAddress:        in.MemberAddress,
	}
	if in.MemberBirthDate != nil {
		d, err := parseDate(*in.MemberBirthDate, loc)
		if err != nil {
			return m, err
		}
		m.MemberBirthDate = &d
	}
	if in.MemberLastContactDate != nil {
		d, err := parseDate(*in.MemberLastContactDate, loc)
		if err != nil {
			return m, err
		}
		m.MemberLastContactDate = &d
	}
	return m, nil
}

/* ===============================
   Update (partial)
=================================*/

type MemberUpdateDTO struct {
	MemberFullName       *string `json:"member_full_name,omitempty" validate:"omitempty,max=100"`
	MemberPhone          *string `json:"member_phone,omitempty" validate:"omitempty,max=25"`
	MemberWhatsappNumber *string `json:"member_whatsapp_number,omitempty" validate:"omitempty,max=25"`
	MemberAddress        *string `json:"member_address,omitempty"`
	MemberBirthDate      *string `json:"member_birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ApplyMemberUpdate: last_contact_date sengaja TIDAK bisa di-patch lewat sini;
// dia hanya bergerak maju lewat event/stage/penyaluran yang selesai.
func ApplyMemberUpdate(m *model.MemberModel, in MemberUpdateDTO, loc *time.Location) error {
	if in.MemberFullName != nil {
		m.MemberFullName = *in.MemberFullName
	}
	if in.MemberPhone != nil {
		m.MemberPhone = in.MemberPhone
	}
	if in.MemberWhatsappNumber != nil {
		m.MemberWhatsappNumber = in.MemberWhatsappNumber
	}
	if in.MemberAddress != nil {
		m.MemberAddress = in.MemberAddress
	}
	if in.MemberBirthDate != nil {
		d, err := parseDate(*in.MemberBirthDate, loc)
		if err != nil {
			return err
		}
		m.MemberBirthDate = &d
	}
	return nil
}

/* ===============================
   Response
=================================*/

type MemberResponse struct {
	MemberID               uuid.UUID `json:"member_id"`
	MemberCampusID         uuid.UUID `json:"member_campus_id"`
	MemberFullName         string    `json:"member_full_name"`
	MemberPhone            *string   `json:"member_phone,omitempty"`
	MemberWhatsappNumber   *string   `json:"member_whatsapp_number,omitempty"`
	MemberAddress          *string   `json:"member_address,omitempty"`
	MemberPhotoURL         *string   `json:"member_photo_url,omitempty"`
	MemberBirthDate        *string   `json:"member_birth_date,omitempty"`
	MemberLastContactDate  *string   `json:"member_last_contact_date,omitempty"`
	MemberEngagementStatus string    `json:"member_engagement_status"`
	MemberDaysSinceContact *int      `json:"member_days_since_contact,omitempty"`
}

func fmtDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

func ToMemberResponse(m model.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:               m.MemberID,
		MemberCampusID:         m.MemberCampusID,
		MemberFullName:         m.MemberFullName,
		MemberPhone:            m.MemberPhone,
		MemberWhatsappNumber:   m.MemberWhatsappNumber,
		MemberAddress:          m.MemberAddress,
		MemberPhotoURL:         m.MemberPhotoURL,
		MemberBirthDate:        fmtDate(m.MemberBirthDate),
		MemberLastContactDate:  fmtDate(m.MemberLastContactDate),
		MemberEngagementStatus: m.MemberEngagementStatus,
		MemberDaysSinceContact: m.MemberDaysSinceContact,
	}
}

func ToMemberResponses(list []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMemberResponse(m))
	}
	return out
}
