// file: internals/helpers/token.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	ErrNoUserID = errors.New("user id tidak ada di token")
	ErrNoRole   = errors.New("role tidak ada di token")
)

// GetUserIDFromToken mengambil user_id yang sudah disimpan middleware AuthJWT di Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userId").(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoUserID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserID
	}
	return id, nil
}

func GetUserRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", ErrNoRole
	}
	return role, nil
}

// GetUserNameFromToken: opsional, untuk metadata export (generated_by).
func GetUserNameFromToken(c *fiber.Ctx) string {
	if name, ok := c.Locals("userName").(string); ok {
		return name
	}
	return ""
}
