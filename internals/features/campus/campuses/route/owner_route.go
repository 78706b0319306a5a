// file: internals/features/campus/campuses/route/owner_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/campus/campuses/controller"
	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
)

func CampusOwnerRoutes(r fiber.Router, db *gorm.DB, cache *careSettingService.Cache) {
	h := &controller.Handler{DB: db, Cache: cache}

	r.Post("/campuses", h.CreateCampus)
	r.Get("/campuses", h.ListCampuses)
	r.Get("/campuses/:id", h.GetCampus)
	r.Patch("/campuses/:id", h.UpdateCampus)
}
