package api

import (
	"github.com/Iceton3000/cardinal-crm/internal/models"
	"github.com/gofiber/fiber/v2"
)

// Catalog serves the fixed pick-lists the record editor renders.
func (handler *Handler) Catalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"stages":        models.Stages(),
		"suppliers":     models.Suppliers(),
		"deleteReasons": models.DeleteReasons(),
		"meterTypes":    []string{models.MeterElectric, models.MeterGas},
	})
}
