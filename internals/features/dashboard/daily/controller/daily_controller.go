// file: internals/features/dashboard/daily/controller/daily_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	careEventModel "faithtracker_backend/internals/features/care/care_events/model"
	stageModel "faithtracker_backend/internals/features/care/follow_up_stages/model"
	"faithtracker_backend/internals/features/dashboard/daily/service"
	aidModel "faithtracker_backend/internals/features/finance/aid_schedules/model"
	memberModel "faithtracker_backend/internals/features/members/members/model"
	helper "faithtracker_backend/internals/helpers"
	helperAuth "faithtracker_backend/internals/helpers/auth"
)

type Handler struct {
	DB    *gorm.DB
	Cache *careSettingService.Cache
}

// LoadDailyView: load semua bahan lalu serahkan ke aggregator murni.
// Dipakai handler HTTP dan scheduler digest.
func LoadDailyView(db *gorm.DB, cache *careSettingService.Cache, campusID uuid.UUID, now time.Time) (service.DailyView, error) {
	snap, err := cache.Get(campusID)
	if err != nil {
		return service.DailyView{}, err
	}

	var members []memberModel.MemberModel
	if err := db.
		Where("member_campus_id = ? AND member_deleted_at IS NULL", campusID).
		Find(&members).Error; err != nil {
		return service.DailyView{}, err
	}

	var stages []stageModel.FollowUpStageModel
	if err := db.
		Where("follow_up_stage_campus_id = ? AND follow_up_stage_completed = FALSE AND follow_up_stage_deleted_at IS NULL",
			campusID).
		Find(&stages).Error; err != nil {
		return service.DailyView{}, err
	}

	var schedules []aidModel.AidScheduleModel
	if err := db.
		Where("aid_schedule_campus_id = ? AND aid_schedule_status = ? AND aid_schedule_deleted_at IS NULL",
			campusID, aidModel.StatusActive).
		Find(&schedules).Error; err != nil {
		return service.DailyView{}, err
	}

	// ulang tahun tahun ini yang sudah ditangani (completed/ignored)
	yearStart := time.Date(now.In(snap.Location).Year(), time.January, 1, 0, 0, 0, 0, snap.Location)
	var handled []careEventModel.CareEventModel
	if err := db.
		Select("care_event_member_id").
		Where("care_event_campus_id = ? AND care_event_type = ? AND (care_event_completed = TRUE OR care_event_ignored = TRUE) AND care_event_date >= ? AND care_event_deleted_at IS NULL",
			campusID, careEventModel.EventBirthday, yearStart).
		Find(&handled).Error; err != nil {
		return service.DailyView{}, err
	}
	birthdayDone := make(map[uuid.UUID]bool, len(handled))
	for _, ev := range handled {
		birthdayDone[ev.CareEventMemberID] = true
	}

	return service.AssembleDailyView(snap, now, members, stages, schedules, birthdayDone), nil
}

// GET /:campus_id/dashboard/daily
func (h *Handler) GetDailyView(c *fiber.Ctx) error {
	campusID, err := uuid.Parse(c.Params("campus_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "campus_id tidak valid")
	}
	if err := helperAuth.EnsureStaffCampus(c, campusID); err != nil {
		return err
	}

	view, err := LoadDailyView(h.DB, h.Cache, campusID, time.Now())
	if err != nil {
		if errors.Is(err, careSettingService.ErrSettingsNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care settings campus tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "daily pastoral view", view)
}
