// file: internals/features/care/care_events/controller/care_event_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/features/care/care_events/dto"
	"faithtracker_backend/internals/features/care/care_events/model"
	stageModel "faithtracker_backend/internals/features/care/follow_up_stages/model"
	stageService "faithtracker_backend/internals/features/care/follow_up_stages/service"
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

// POST /:campus_id/care-events
// grief_loss melahirkan 6 tahap grief, accident_illness melahirkan 3 tahap
// follow-up — dalam transaksi yang sama dengan insert event (atomik; retry
// tidak menggandakan timeline karena spawn di-guard upsert).
func (h *Handler) CreateCareEvent(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	var in dto.CareEventCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if fieldErrs := in.ValidateVariant(); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	snap, err := h.Cache.Get(campusID)
	if err != nil {
		if errors.Is(err, careSettingService.ErrSettingsNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care settings campus tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m, err := dto.CareEventCreateDTOToModel(in, campusID, snap.Location)
	if err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}

	// pastikan member milik campus ini
	var memberCount int64
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Where("member_id = ? AND member_campus_id = ? AND member_deleted_at IS NULL",
			m.CareEventMemberID, campusID).
		Count(&memberCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if memberCount == 0 {
		return helper.JsonError(c, http.StatusNotFound, "member not found")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}

		anchor := time.Time(m.CareEventDate)
		switch m.CareEventType {
		case model.EventGriefLoss:
			return stageService.SpawnForEvent(tx,
				campusID, m.CareEventMemberID, m.CareEventID,
				stageModel.StageKindGrief, anchor,
				snap.GriefOffsets, stageService.GriefLabels, snap.Location)
		case model.EventAccidentIllness:
			return stageService.SpawnForEvent(tx,
				campusID, m.CareEventMemberID, m.CareEventID,
				stageModel.StageKindAccident, anchor,
				snap.AccidentOffsets, stageService.AccidentLabels, snap.Location)
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "care event created", dto.ToCareEventResponse(m))
}

// GET /:campus_id/care-events?member_id=&type=&active=true
func (h *Handler) ListCareEvents(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"date":       "care_event_date",
		"created_at": "care_event_created_at",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "date")

	q := h.DB.Model(&model.CareEventModel{}).
		Where("care_event_campus_id = ? AND care_event_deleted_at IS NULL", campusID)

	if raw := strings.TrimSpace(c.Query("member_id")); raw != "" {
		mid, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "member_id tidak valid")
		}
		q = q.Where("care_event_member_id = ?", mid)
	}
	if typ := strings.TrimSpace(c.Query("type")); typ != "" {
		q = q.Where("care_event_type = ?", typ)
	}
	if c.Query("active") == "true" {
		q = q.Where("care_event_completed = FALSE AND care_event_ignored = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.CareEventModel
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := dto.ToCareEventResponses(list)
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out))
	return helper.JsonList(c, "care events", out, &pg)
}

// POST /:campus_id/care-events/:id/complete
// Event selesai = kontak pastoral terjadi: last_contact_date jemaat ikut maju.
func (h *Handler) CompleteCareEvent(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	loc := dbtime.GetCampusLocation(c)
	today := dbtime.Today(loc)

	var m model.CareEventModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m,
			"care_event_id = ? AND care_event_campus_id = ? AND care_event_deleted_at IS NULL",
			id, campusID,
		).Error; err != nil {
			return err
		}
		if m.CareEventCompleted {
			return nil // idempotent
		}

		now := time.Now()
		m.CareEventCompleted = true
		m.CareEventCompletedAt = &now
		if err := tx.Model(&model.CareEventModel{}).
			Where("care_event_id = ?", id).
			Updates(map[string]any{
				"care_event_completed":    true,
				"care_event_completed_at": now,
			}).Error; err != nil {
			return err
		}

		return memberService.BumpLastContact(tx, m.CareEventMemberID, today)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care event not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "care event completed", dto.ToCareEventResponse(m))
}

// POST /:campus_id/care-events/:id/ignore
// Ignored menyingkirkan event dari tampilan aktif TANPA menandainya selesai
// (tidak menggeser last_contact_date).
func (h *Handler) IgnoreCareEvent(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	res := h.DB.Model(&model.CareEventModel{}).
		Where("care_event_id = ? AND care_event_campus_id = ? AND care_event_deleted_at IS NULL", id, campusID).
		Update("care_event_ignored", true)
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "care event not found")
	}
	return helper.JsonUpdated(c, "care event ignored", fiber.Map{"care_event_id": id})
}

// DELETE /:campus_id/care-events/:id (soft delete; tahap ikut disembunyikan)
func (h *Handler) DeleteCareEvent(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("care_event_id = ? AND care_event_campus_id = ?", id, campusID).
			Delete(&model.CareEventModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("follow_up_stage_care_event_id = ?", id).
			Delete(&stageModel.FollowUpStageModel{}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care event not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "care event deleted", fiber.Map{"care_event_id": id})
}
