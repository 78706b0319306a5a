// file: internals/features/finance/aid_schedules/dto/aid_schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"faithtracker_backend/internals/features/finance/aid_schedules/model"
	"faithtracker_backend/internals/features/finance/aid_schedules/service"
)

const dateLayout = "2006-01-02"

/* ===============================
   Create
=================================*/

type AidScheduleCreateDTO struct {
	AidScheduleMemberID  string  `json:"aid_schedule_member_id" validate:"required,uuid4"`
	AidScheduleFrequency string  `json:"aid_schedule_frequency" validate:"required,oneof=one_time weekly monthly annually"`
	AidScheduleStartDate string  `json:"aid_schedule_start_date" validate:"required,datetime=2006-01-02"`
	AidScheduleEndDate   *string `json:"aid_schedule_end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	AidScheduleDayOfWeek   *int `json:"aid_schedule_day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
	AidScheduleDayOfMonth  *int `json:"aid_schedule_day_of_month,omitempty" validate:"omitempty,min=1,max=31"`
	AidScheduleMonthOfYear *int `json:"aid_schedule_month_of_year,omitempty" validate:"omitempty,min=1,max=12"`

	AidScheduleAmountIDR int64   `json:"aid_schedule_amount_idr" validate:"required,min=1"`
	AidScheduleNote      *string `json:"aid_schedule_note,omitempty"`
}

// ValidateFrequencyFields menolak kombinasi frekuensi/field yang tidak cocok
// SEBELUM hitungan kejadian apa pun jalan: weekly wajib day_of_week, monthly
// wajib day_of_month, annually wajib month_of_year, one_time melarang ketiganya.
func (in AidScheduleCreateDTO) ValidateFrequencyFields() map[string][]string {
	errs := map[string][]string{}
	add := func(field, msg string) { errs[field] = append(errs[field], msg) }

	switch in.AidScheduleFrequency {
	case service.FreqOneTime:
		if in.AidScheduleDayOfWeek != nil {
			add("aid_schedule_day_of_week", "tidak berlaku untuk one_time")
		}
		if in.AidScheduleDayOfMonth != nil {
			add("aid_schedule_day_of_month", "tidak berlaku untuk one_time")
		}
		if in.AidScheduleMonthOfYear != nil {
			add("aid_schedule_month_of_year", "tidak berlaku untuk one_time")
		}
	case service.FreqWeekly:
		if in.AidScheduleDayOfWeek == nil {
			add("aid_schedule_day_of_week", "wajib untuk weekly")
		}
		if in.AidScheduleDayOfMonth != nil {
			add("aid_schedule_day_of_month", "tidak berlaku untuk weekly")
		}
		if in.AidScheduleMonthOfYear != nil {
			add("aid_schedule_month_of_year", "tidak berlaku untuk weekly")
		}
	case service.FreqMonthly:
		if in.AidScheduleDayOfMonth == nil {
			add("aid_schedule_day_of_month", "wajib untuk monthly")
		}
		if in.AidScheduleDayOfWeek != nil {
			add("aid_schedule_day_of_week", "tidak berlaku untuk monthly")
		}
		if in.AidScheduleMonthOfYear != nil {
			add("aid_schedule_month_of_year", "tidak berlaku untuk monthly")
		}
	case service.FreqAnnually:
		if in.AidScheduleMonthOfYear == nil {
			add("aid_schedule_month_of_year", "wajib untuk annually")
		}
		if in.AidScheduleDayOfWeek != nil {
			add("aid_schedule_day_of_week", "tidak berlaku untuk annually")
		}
		if in.AidScheduleDayOfMonth != nil {
			add("aid_schedule_day_of_month", "tidak berlaku untuk annually")
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func AidScheduleCreateDTOToModel(in AidScheduleCreateDTO, campusID uuid.UUID, loc *time.Location) (model.AidScheduleModel, error) {
	memberID, err := uuid.Parse(in.AidScheduleMemberID)
	if err != nil {
		return model.AidScheduleModel{}, err
	}
	start, err := time.ParseInLocation(dateLayout, in.AidScheduleStartDate, loc)
	if err != nil {
		return model.AidScheduleModel{}, err
	}

	m := model.AidScheduleModel{
		AidScheduleCampusID:    campusID,
		AidScheduleMemberID:    memberID,
		AidScheduleFrequency:   in.AidScheduleFrequency,
		AidScheduleStartDate:   datatypes.Date(start),
		AidScheduleDayOfWeek:   in.AidScheduleDayOfWeek,
		AidScheduleDayOfMonth:  in.AidScheduleDayOfMonth,
		AidScheduleMonthOfYear: in.AidScheduleMonthOfYear,
		AidScheduleAmountIDR:   in.AidScheduleAmountIDR,
		AidScheduleStatus:      model.StatusActive,
		AidScheduleNote:        in.AidScheduleNote,
	}
	if in.AidScheduleEndDate != nil {
		end, err := time.ParseInLocation(dateLayout, *in.AidScheduleEndDate, loc)
		if err != nil {
			return m, err
		}
		d := datatypes.Date(end)
		m.AidScheduleEndDate = &d
	}
	return m, nil
}

// RuleFromModel memetakan baris DB ke aturan murni scheduler.
func RuleFromModel(m model.AidScheduleModel) service.RecurrenceRule {
	r := service.RecurrenceRule{
		Frequency: m.AidScheduleFrequency,
		StartDate: time.Time(m.AidScheduleStartDate),
	}
	if m.AidScheduleEndDate != nil {
		t := time.Time(*m.AidScheduleEndDate)
		r.EndDate = &t
	}
	if m.AidScheduleDayOfWeek != nil {
		w := time.Weekday(*m.AidScheduleDayOfWeek)
		r.DayOfWeek = &w
	}
	if m.AidScheduleDayOfMonth != nil {
		r.DayOfMonth = m.AidScheduleDayOfMonth
	}
	if m.AidScheduleMonthOfYear != nil {
		mo := time.Month(*m.AidScheduleMonthOfYear)
		r.MonthOfYear = &mo
	}
	return r
}

/* ===============================
   Mark distributed
=================================*/

type AidScheduleDistributeDTO struct {
	// Versi yang dilihat caller; basis optimistic lock
	AidScheduleVersion int `json:"aid_schedule_version" validate:"required,min=1"`
	// Tanggal penyaluran; default hari ini (campus tz) jika kosong
	DistributedOn *string `json:"distributed_on,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Note          *string `json:"note,omitempty"`
}

/* ===============================
   Response
=================================*/

type AidScheduleResponse struct {
	AidScheduleID             uuid.UUID `json:"aid_schedule_id"`
	AidScheduleMemberID       uuid.UUID `json:"aid_schedule_member_id"`
	AidScheduleFrequency      string    `json:"aid_schedule_frequency"`
	AidScheduleStartDate      string    `json:"aid_schedule_start_date"`
	AidScheduleEndDate        *string   `json:"aid_schedule_end_date,omitempty"`
	AidScheduleDayOfWeek      *int      `json:"aid_schedule_day_of_week,omitempty"`
	AidScheduleDayOfMonth     *int      `json:"aid_schedule_day_of_month,omitempty"`
	AidScheduleMonthOfYear    *int      `json:"aid_schedule_month_of_year,omitempty"`
	AidScheduleAmountIDR      int64     `json:"aid_schedule_amount_idr"`
	AidScheduleStatus         string    `json:"aid_schedule_status"`
	AidScheduleNextOccurrence *string   `json:"aid_schedule_next_occurrence,omitempty"`
	AidScheduleVersion        int       `json:"aid_schedule_version"`
	AidScheduleNote           *string   `json:"aid_schedule_note,omitempty"`
}

func fmtDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(dateLayout)
	return &s
}

func ToAidScheduleResponse(m model.AidScheduleModel) AidScheduleResponse {
	start := time.Time(m.AidScheduleStartDate).Format(dateLayout)
	return AidScheduleResponse{
		AidScheduleID:             m.AidScheduleID,
		AidScheduleMemberID:       m.AidScheduleMemberID,
		AidScheduleFrequency:      m.AidScheduleFrequency,
		AidScheduleStartDate:      start,
		AidScheduleEndDate:        fmtDate(m.AidScheduleEndDate),
		AidScheduleDayOfWeek:      m.AidScheduleDayOfWeek,
		AidScheduleDayOfMonth:     m.AidScheduleDayOfMonth,
		AidScheduleMonthOfYear:    m.AidScheduleMonthOfYear,
		AidScheduleAmountIDR:      m.AidScheduleAmountIDR,
		AidScheduleStatus:         m.AidScheduleStatus,
		AidScheduleNextOccurrence: fmtDate(m.AidScheduleNextOccurrence),
		AidScheduleVersion:        m.AidScheduleVersion,
		AidScheduleNote:           m.AidScheduleNote,
	}
}

func ToAidScheduleResponses(list []model.AidScheduleModel) []AidScheduleResponse {
	out := make([]AidScheduleResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAidScheduleResponse(m))
	}
	return out
}
