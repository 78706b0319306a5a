// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/users/auth/controller"
	"faithtracker_backend/internals/middlewares"
)

// AuthPublicRoutes: endpoint tanpa token (dengan rate limit khusus).
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ac := controller.NewAuthController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), ac.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ac.Login)
	r.Post("/login/google", middlewares.LoginRateLimiter(), ac.GoogleLogin)
}

// AuthUserRoutes: endpoint yang butuh token aktif.
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ac := controller.NewAuthController(db)

	r.Post("/logout", ac.Logout)
	r.Get("/me", ac.Me)
}
