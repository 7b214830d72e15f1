package api

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) DueReminders(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	due, err := handler.queryService.DueReminders(*user, parseQueryState(c), time.Now().In(handler.location))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(due)
}

// DuplicatePhones flags phone collisions over the whole live set, not the
// filtered view, so a duplicate never hides behind a search.
func (handler *Handler) DuplicatePhones(c *fiber.Ctx) error {
	handler.ensureDependencies()
	duplicates, err := handler.queryService.DuplicatePhones()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"phones": phoneSetToList(duplicates)})
}

func (handler *Handler) DNCPhones(c *fiber.Ctx) error {
	handler.ensureDependencies()
	phones, err := handler.queryService.DNCPhones()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"phones": phoneSetToList(phones)})
}

func phoneSetToList(set map[string]struct{}) []string {
	phones := make([]string, 0, len(set))
	for phone := range set {
		phones = append(phones, phone)
	}
	sort.Strings(phones)
	return phones
}
