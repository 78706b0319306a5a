// file: internals/features/members/members/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/features/members/members/controller"
)

func MemberAdminRoutes(r fiber.Router, db *gorm.DB, cache *careSettingService.Cache) {
	h := &controller.Handler{DB: db, Cache: cache}

	g := r.Group("/:campus_id/members")
	g.Post("/", h.CreateMember)
	g.Get("/", h.ListMembers)
	g.Get("/:id", h.GetMember)
	g.Patch("/:id", h.UpdateMember)
	g.Delete("/:id", h.DeleteMember)
	g.Post("/:id/photo", h.UploadPhoto)
}
