// file: internals/features/finance/aid_schedules/controller/aid_schedule_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	careEventModel "faithtracker_backend/internals/features/care/care_events/model"
	"faithtracker_backend/internals/features/finance/aid_schedules/dto"
	"faithtracker_backend/internals/features/finance/aid_schedules/model"
	"faithtracker_backend/internals/features/finance/aid_schedules/service"
	memberModel "faithtracker_backend/internals/features/members/members/model"
	memberService "faithtracker_backend/internals/features/members/members/service"
	helper "faithtracker_backend/internals/helpers"
	helperAuth "faithtracker_backend/internals/helpers/auth"
	"faithtracker_backend/internals/helpers/dbtime"
)

type Handler struct {
	DB    *gorm.DB
	Cache *careSettingService.Cache
}

func (h *Handler) campusID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("campus_id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "campus_id tidak valid")
	}
	if err := helperAuth.EnsureStaffCampus(c, id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// POST /:campus_id/aid-schedules
// Kejadian pertama dihitung saat create dan selalu ≥ start_date.
func (h *Handler) CreateAidSchedule(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	var in dto.AidScheduleCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if fieldErrs := in.ValidateFrequencyFields(); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	snap, err := h.Cache.Get(campusID)
	if err != nil {
		if errors.Is(err, careSettingService.ErrSettingsNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care settings campus tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m, err := dto.AidScheduleCreateDTOToModel(in, campusID, snap.Location)
	if err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}

	var memberCount int64
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ? AND member_campus_id = ? AND member_deleted_at IS NULL",
			m.AidScheduleMemberID, campusID).
		Count(&memberCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if memberCount == 0 {
		return helper.JsonError(c, http.StatusNotFound, "member not found")
	}

	rule := dto.RuleFromModel(m)
	if next, ok := service.InitialOccurrence(rule, snap.Location); ok {
		d := datatypes.Date(next)
		m.AidScheduleNextOccurrence = &d
	} else {
		// end_date sebelum kejadian pertama: sah, tapi langsung berhenti
		m.AidScheduleStatus = model.StatusStopped
	}

	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "aid schedule created", dto.ToAidScheduleResponse(m))
}

// GET /:campus_id/aid-schedules?member_id=&status=&due=true
func (h *Handler) ListAidSchedules(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "next", "asc", helper.DefaultOpts)
	allowed := map[string]string{
		"next":       "aid_schedule_next_occurrence",
		"created_at": "aid_schedule_created_at",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "next")

	q := h.DB.Model(&model.AidScheduleModel{}).
		Where("aid_schedule_campus_id = ? AND aid_schedule_deleted_at IS NULL", campusID)

	if raw := strings.TrimSpace(c.Query("member_id")); raw != "" {
		mid, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "member_id tidak valid")
		}
		q = q.Where("aid_schedule_member_id = ?", mid)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("aid_schedule_status = ?", status)
	}
	if c.Query("due") == "true" {
		loc := dbtime.GetCampusLocation(c)
		today := datatypes.Date(dbtime.Today(loc))
		q = q.Where("aid_schedule_status = ? AND aid_schedule_next_occurrence <= ?",
			model.StatusActive, today)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.AidScheduleModel
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := dto.ToAidScheduleResponses(list)
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out))
	return helper.JsonList(c, "aid schedules", out, &pg)
}

// POST /:campus_id/aid-schedules/:id/mark-distributed
// Optimistic lock per jadwal: UPDATE ... WHERE version = versi caller. Caller
// kedua yang balapan kena 409 dan harus baca ulang; tidak pernah double-advance.
// Penyaluran = kontak pastoral: dicatat sebagai care event financial_aid yang
// sudah completed + last_contact_date jemaat maju, semuanya satu tx.
func (h *Handler) MarkDistributed(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.AidScheduleDistributeDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	snap, err := h.Cache.Get(campusID)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	loc := snap.Location

	distributedOn := dbtime.Today(loc)
	if in.DistributedOn != nil {
		t, perr := time.ParseInLocation("2006-01-02", *in.DistributedOn, loc)
		if perr != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, "distributed_on harus format YYYY-MM-DD")
		}
		distributedOn = t
	}

	var m model.AidScheduleModel
	if err := h.DB.First(&m,
		"aid_schedule_id = ? AND aid_schedule_campus_id = ? AND aid_schedule_deleted_at IS NULL",
		id, campusID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "aid schedule not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if m.AidScheduleStatus != model.StatusActive {
		return helper.JsonError(c, http.StatusUnprocessableEntity, "jadwal sudah berhenti")
	}
	if m.AidScheduleNextOccurrence == nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, "jadwal tidak punya kejadian berikutnya")
	}

	current := time.Time(*m.AidScheduleNextOccurrence)
	rule := dto.RuleFromModel(m)

	updates := map[string]any{
		"aid_schedule_version": gorm.Expr("aid_schedule_version + 1"),
	}
	if next, ok := service.Advance(rule, current, distributedOn, loc); ok {
		updates["aid_schedule_next_occurrence"] = datatypes.Date(next)
	} else {
		// one_time atau sudah melewati end_date: berhenti
		updates["aid_schedule_next_occurrence"] = nil
		updates["aid_schedule_status"] = model.StatusStopped
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.AidScheduleModel{}).
			Where("aid_schedule_id = ? AND aid_schedule_version = ?", id, in.AidScheduleVersion).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound // versi basi → 409 di bawah
		}

		amount := m.AidScheduleAmountIDR
		now := time.Now()
		ev := careEventModel.CareEventModel{
			CareEventCampusID:      campusID,
			CareEventMemberID:      m.AidScheduleMemberID,
			CareEventType:          careEventModel.EventFinancialAid,
			CareEventDate:          datatypes.Date(distributedOn),
			CareEventAidAmountIDR:  &amount,
			CareEventAidScheduleID: &m.AidScheduleID,
			CareEventNote:          in.Note,
			CareEventCompleted:     true,
			CareEventCompletedAt:   &now,
		}
		if err := tx.Create(&ev).Error; err != nil {
			return err
		}

		return memberService.BumpLastContact(tx, m.AidScheduleMemberID, distributedOn)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonConflict(c, "jadwal sudah berubah sejak terakhir dibaca; muat ulang lalu coba lagi")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// baca ulang untuk response (versi & kejadian baru)
	if err := h.DB.First(&m, "aid_schedule_id = ?", id).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "distribution recorded", dto.ToAidScheduleResponse(m))
}

// POST /:campus_id/aid-schedules/:id/stop — transisi terminal eksplisit.
func (h *Handler) StopAidSchedule(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	res := h.DB.Model(&model.AidScheduleModel{}).
		Where("aid_schedule_id = ? AND aid_schedule_campus_id = ? AND aid_schedule_status = ? AND aid_schedule_deleted_at IS NULL",
			id, campusID, model.StatusActive).
		Updates(map[string]any{
			"aid_schedule_status":          model.StatusStopped,
			"aid_schedule_next_occurrence": nil,
			"aid_schedule_version":         gorm.Expr("aid_schedule_version + 1"),
		})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "jadwal aktif tidak ditemukan")
	}
	return helper.JsonUpdated(c, "aid schedule stopped", fiber.Map{"aid_schedule_id": id})
}
