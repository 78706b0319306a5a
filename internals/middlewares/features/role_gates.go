// file: internals/middlewares/features/role_gates.go
package features

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"faithtracker_backend/internals/constants"
	helperAuth "faithtracker_backend/internals/helpers/auth"
)

// RequirePathScopeMatch: path /:campus_id harus cocok dengan campus di token
// (owner lolos global).
func RequirePathScopeMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("campus_id"))
		if raw == "" {
			return c.Next()
		}
		campusID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "campus_id tidak valid")
		}
		return runNext(c, helperAuth.EnsureMemberCampus(c, campusID))
	}
}

// IsCampusStaff: staf pastoral/admin campus (owner lolos).
func IsCampusStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		switch helperAuth.GetRole(c) {
		case constants.RoleStaff, constants.RoleAdmin:
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStaff("pastoral care"))
	}
}

// IsOwnerGlobal: hanya owner.
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsOwner(c) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorOwner("global"))
	}
}

func runNext(c *fiber.Ctx, err error) error {
	if err != nil {
		return err
	}
	return c.Next()
}
