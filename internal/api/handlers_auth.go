package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SetupStatus tells the client whether the first-admin bootstrap is still
// open. The login screen switches to the setup form when it is.
func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	handler.ensureDependencies()
	needed, err := handler.authService.NeedsBootstrap()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"needsBootstrap": needed})
}

func (handler *Handler) Bootstrap(c *fiber.Ctx) error {
	input := bootstrapInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	admin, err := handler.authService.BootstrapFirstAdmin(input.Name, input.Email, input.PIN)
	if err != nil {
		return serviceError(c, err)
	}

	if err := handler.setAuthCookie(c, &admin); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(admin)
}

const (
	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()

	now := time.Now()
	limiterKey := loginLimiterKey(c, input.Email)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many failed attempts, try again later")
	}

	user, err := handler.authService.Login(input.Email, input.PIN)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return serviceError(c, err)
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}
