// file: internals/features/dashboard/daily/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/features/dashboard/daily/controller"
)

func DashboardAdminRoutes(r fiber.Router, db *gorm.DB, cache *careSettingService.Cache) {
	h := &controller.Handler{DB: db, Cache: cache}

	r.Get("/:campus_id/dashboard/daily", h.GetDailyView)
}
