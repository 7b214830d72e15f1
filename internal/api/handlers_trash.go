package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListTrash(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	items, err := handler.recordService.ListTrash(*user)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) RestoreTrashItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	record, err := handler.recordService.Restore(*user, c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) PurgeTrashItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	confirmed := c.Query("confirmed") == "true"
	handler.ensureDependencies()
	if err := handler.recordService.Purge(*user, c.Params("id"), confirmed); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
