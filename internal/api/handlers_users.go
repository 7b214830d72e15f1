package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	users, err := handler.userService.ListUsers(*user)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

// ListActiveUsers backs the owner filter and reassignment pickers, so agents
// may read it too.
func (handler *Handler) ListActiveUsers(c *fiber.Ctx) error {
	handler.ensureDependencies()
	users, err := handler.userService.ListActiveUsers()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := userInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	created, err := handler.userService.CreateUser(*user, input.Name, input.Email, input.Role, input.PIN)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := userInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	updated, err := handler.userService.UpdateUser(*user, c.Params("id"), input.Name, input.Email, input.Role, input.PIN)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(updated)
}

func (handler *Handler) DeactivateUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deactivateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	result, err := handler.userService.Deactivate(*user, c.Params("id"), input.ReassignToEmail, input.Confirmed)
	if err != nil {
		return serviceError(c, err)
	}

	response := fiber.Map{
		"user":              result.User,
		"recordsReassigned": result.RecordsReassigned,
	}
	if result.ReassignedTo != nil {
		response["reassignedTo"] = result.ReassignedTo
	}
	return c.JSON(response)
}
