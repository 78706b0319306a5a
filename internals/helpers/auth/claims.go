// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"faithtracker_backend/internals/constants"
)

// Nama locals yang di-hydrate middleware AuthJWT
const (
	LocUserID   = "user_id"
	LocCampusID = "campus_id"
	LocRole     = "role"
	LocIsOwner  = "is_owner"
)

func strLocal(c *fiber.Ctx, key string) string {
	if v := c.Locals(key); v != nil {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	s := strLocal(c, LocUserID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

func GetCampusID(c *fiber.Ctx) (uuid.UUID, error) {
	s := strLocal(c, LocCampusID)
	if s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "campus_id tidak ada di token")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "campus_id tidak valid")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) string {
	return strLocal(c, LocRole)
}

func IsOwner(c *fiber.Ctx) bool {
	if v := c.Locals(LocIsOwner); v != nil {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// EnsureStaffCampus: hanya staf pastoral/admin campus tsb (owner lolos global).
func EnsureStaffCampus(c *fiber.Ctx, campusID uuid.UUID) error {
	if IsOwner(c) {
		return nil
	}
	tokenCampus, err := GetCampusID(c)
	if err != nil {
		return err
	}
	if tokenCampus != campusID {
		return fiber.NewError(fiber.StatusForbidden, "bukan campus Anda")
	}
	switch GetRole(c) {
	case constants.RoleStaff, constants.RoleAdmin:
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStaff("pastoral care"))
}

// EnsureMemberCampus: user ter-autentikasi apa pun rolenya, asal campus cocok.
func EnsureMemberCampus(c *fiber.Ctx, campusID uuid.UUID) error {
	if IsOwner(c) {
		return nil
	}
	tokenCampus, err := GetCampusID(c)
	if err != nil {
		return err
	}
	if tokenCampus != campusID {
		return fiber.NewError(fiber.StatusForbidden, "bukan campus Anda")
	}
	return nil
}
