package api

import (
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
	"github.com/Iceton3000/cardinal-crm/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func (handler *Handler) ListRecords(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	records, err := handler.queryService.VisibleRecords(*user, parseQueryState(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(records)
}

func (handler *Handler) CreateRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	record, err := handler.recordService.CreateFor(*user)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (handler *Handler) GetRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	record, err := handler.repositories.Records.FindByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if !recordAccessibleTo(user, record) {
		return serviceError(c, gorm.ErrRecordNotFound)
	}
	return c.JSON(record)
}

func (handler *Handler) SaveRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := saveRecordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input.Record.ID = c.Params("id")

	handler.ensureDependencies()
	if existing, err := handler.repositories.Records.FindByID(input.Record.ID); err == nil {
		if !recordAccessibleTo(user, existing) {
			return serviceError(c, gorm.ErrRecordNotFound)
		}
	}

	record, err := handler.recordService.Save(services.SaveInput{
		Record:                   input.Record,
		NoteDraft:                input.NoteDraft,
		ConfirmedWithoutReminder: input.ConfirmedWithoutReminder,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) PromoteRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := promoteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	existing, err := handler.repositories.Records.FindByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if !recordAccessibleTo(user, existing) {
		return serviceError(c, gorm.ErrRecordNotFound)
	}

	record, err := handler.recordService.PromoteStage(c.Params("id"), input.Stage, input.Confirmed)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deleteRecordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.recordService.SoftDelete(*user, c.Params("id"), input.Reason, input.AddToDNC, input.Confirmed); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) SnoozeRecord(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := snoozeInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Minutes <= 0 {
		return apiError(c, fiber.StatusBadRequest, "minutes must be positive")
	}

	handler.ensureDependencies()
	existing, err := handler.repositories.Records.FindByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	if !recordAccessibleTo(user, existing) {
		return serviceError(c, gorm.ErrRecordNotFound)
	}

	record, err := handler.recordService.Snooze(c.Params("id"), input.Minutes, time.Now().In(handler.location))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(record)
}

func (handler *Handler) BulkReassign(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := bulkReassignInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	moved, err := handler.queryService.BulkReassign(*user, parseQueryState(c), input.TargetOwnerID, input.Confirmed)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"reassigned": moved})
}

// recordAccessibleTo hides other agents' and unassigned records from
// non-admin viewers on direct fetches.
func recordAccessibleTo(user *models.User, record models.Record) bool {
	if user.Role == models.RoleAdmin {
		return true
	}
	return record.OwnerID != nil && *record.OwnerID == user.ID
}
