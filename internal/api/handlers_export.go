package api

import (
	"fmt"
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	output, err := handler.recordService.ExportCSV(*user)
	if err != nil {
		return serviceError(c, err)
	}

	setCSVAttachmentHeaders(c, services.ExportFilename(time.Now().In(handler.location)))
	return c.SendString(output)
}

func (handler *Handler) ExportTemplate(c *fiber.Ctx) error {
	setCSVAttachmentHeaders(c, services.TemplateFilename)
	return c.SendString(services.CSVTemplate())
}

func (handler *Handler) ImportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := importInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	imported, err := handler.recordService.ImportCSV(*user, input.Text, input.OwnerID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"imported": imported})
}

func setCSVAttachmentHeaders(c *fiber.Ctx, filename string) {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
