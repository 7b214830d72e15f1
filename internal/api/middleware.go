package api

import (
	"github.com/Iceton3000/cardinal-crm/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName = "cardinal_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
