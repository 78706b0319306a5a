// file: internals/features/finance/aid_schedules/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/features/finance/aid_schedules/controller"
)

func AidScheduleAdminRoutes(r fiber.Router, db *gorm.DB, cache *careSettingService.Cache) {
	h := &controller.Handler{DB: db, Cache: cache}

	g := r.Group("/:campus_id/aid-schedules")
	g.Post("/", h.CreateAidSchedule)
	g.Get("/", h.ListAidSchedules)
	g.Post("/:id/mark-distributed", h.MarkDistributed)
	g.Post("/:id/stop", h.StopAidSchedule)
}
