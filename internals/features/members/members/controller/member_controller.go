// file: internals/features/members/members/controller/member_controller.go
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
	engagementService "faithtracker_backend/internals/features/members/engagement/service"
	"faithtracker_backend/internals/features/members/members/dto"
	"faithtracker_backend/internals/features/members/members/model"
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

// classifyInto mengisi cache status engagement member dari snapshot campus.
func classifyInto(m *model.MemberModel, snap *careSettingService.Snapshot, now time.Time) {
	var last *time.Time
	if m.MemberLastContactDate != nil {
		t := time.Time(*m.MemberLastContactDate)
		last = &t
	}
	res := engagementService.Classify(last, snap, now)
	m.MemberEngagementStatus = string(res.Status)
	m.MemberDaysSinceContact = res.Days
}

// POST /:campus_id/members
func (h *Handler) CreateMember(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	var in dto.MemberCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	snap, err := h.Cache.Get(campusID)
	if err != nil {
		if errors.Is(err, careSettingService.ErrSettingsNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care settings campus tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	m, err := dto.MemberCreateDTOToModel(in, campusID, snap.Location)
	if err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}
	classifyInto(&m, snap, time.Now())

	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "member created", dto.ToMemberResponse(m))
}

// GET /:campus_id/members?status=&q=&page=&per_page=&sort_by=&order=
func (h *Handler) ListMembers(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)
	allowed := map[string]string{
		"name":         "member_full_name",
		"created_at":   "member_created_at",
		"last_contact": "member_last_contact_date",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "name")

	q := h.DB.Model(&model.MemberModel{}).
		Where("member_campus_id = ? AND member_deleted_at IS NULL", campusID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("member_engagement_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("member_full_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.MemberModel
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := dto.ToMemberResponses(list)
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out))
	return helper.JsonList(c, "members", out, &pg)
}

// GET /:campus_id/members/:id
func (h *Handler) GetMember(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.MemberModel
	if err := h.DB.First(&m,
		"member_id = ? AND member_campus_id = ? AND member_deleted_at IS NULL", id, campusID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "member not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "member", dto.ToMemberResponse(m))
}

// PATCH /:campus_id/members/:id
func (h *Handler) UpdateMember(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.MemberUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.MemberModel
	if err := h.DB.First(&m,
		"member_id = ? AND member_campus_id = ? AND member_deleted_at IS NULL", id, campusID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "member not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	loc := dbtime.GetCampusLocation(c)
	if err := dto.ApplyMemberUpdate(&m, in, loc); err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "member updated", dto.ToMemberResponse(m))
}

// DELETE /:campus_id/members/:id (soft delete)
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	res := h.DB.Where("member_id = ? AND member_campus_id = ?", id, campusID).
		Delete(&model.MemberModel{})
	if res.Error != nil {
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "member not found")
	}
	return helper.JsonDeleted(c, "member deleted", fiber.Map{"member_id": id})
}

// POST /:campus_id/members/:id/photo (multipart "photo")
func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var m model.MemberModel
	if err := h.DB.First(&m,
		"member_id = ? AND member_campus_id = ? AND member_deleted_at IS NULL", id, campusID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "member not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "file 'photo' wajib dikirim")
	}

	url, err := helper.SaveMemberPhoto(fh)
	if err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}

	m.MemberPhotoURL = &url
	if err := h.DB.Model(&m).Update("member_photo_url", url).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "photo updated", dto.ToMemberResponse(m))
}
