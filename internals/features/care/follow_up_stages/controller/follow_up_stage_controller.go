// file: internals/features/care/follow_up_stages/controller/follow_up_stage_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/care/follow_up_stages/dto"
	"faithtracker_backend/internals/features/care/follow_up_stages/model"
	memberService "faithtracker_backend/internals/features/members/members/service"
	helper "faithtracker_backend/internals/helpers"
	helperAuth "faithtracker_backend/internals/helpers/auth"
	"faithtracker_backend/internals/helpers/dbtime"
)

type Handler struct {
	DB *gorm.DB
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

// GET /:campus_id/follow-up-stages?member_id=&kind=&pending=true
func (h *Handler) ListStages(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "scheduled", "asc", helper.DefaultOpts)
	allowed := map[string]string{
		"scheduled":  "follow_up_stage_scheduled_date",
		"created_at": "follow_up_stage_created_at",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "scheduled")

	q := h.DB.Model(&model.FollowUpStageModel{}).
		Where("follow_up_stage_campus_id = ? AND follow_up_stage_deleted_at IS NULL", campusID)

	if raw := strings.TrimSpace(c.Query("member_id")); raw != "" {
		mid, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "member_id tidak valid")
		}
		q = q.Where("follow_up_stage_member_id = ?", mid)
	}
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		if kind != model.StageKindGrief && kind != model.StageKindAccident {
			return helper.JsonError(c, http.StatusBadRequest, "kind harus grief|accident")
		}
		q = q.Where("follow_up_stage_kind = ?", kind)
	}
	if c.Query("pending") == "true" {
		q = q.Where("follow_up_stage_completed = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.FollowUpStageModel
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := dto.ToFollowUpStageResponses(list)
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out))
	return helper.JsonList(c, "follow-up stages", out, &pg)
}

// POST /:campus_id/follow-up-stages/:id/complete
// Tahap selesai = kontak pastoral: last_contact_date jemaat ikut maju, satu tx.
// Completed bersifat terminal; menyelesaikan dua kali tidak mengubah apa pun.
func (h *Handler) CompleteStage(c *fiber.Ctx) error {
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

	var m model.FollowUpStageModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m,
			"follow_up_stage_id = ? AND follow_up_stage_campus_id = ? AND follow_up_stage_deleted_at IS NULL",
			id, campusID,
		).Error; err != nil {
			return err
		}
		if m.FollowUpStageCompleted {
			return nil // idempotent
		}

		now := time.Now()
		m.FollowUpStageCompleted = true
		m.FollowUpStageCompletedAt = &now
		if err := tx.Model(&model.FollowUpStageModel{}).
			Where("follow_up_stage_id = ?", id).
			Updates(map[string]any{
				"follow_up_stage_completed":    true,
				"follow_up_stage_completed_at": now,
			}).Error; err != nil {
			return err
		}

		return memberService.BumpLastContact(tx, m.FollowUpStageMemberID, today)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "follow-up stage not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "stage completed", dto.ToFollowUpStageResponse(m))
}
