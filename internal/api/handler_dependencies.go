package api

import (
	"github.com/Iceton3000/cardinal-crm/internal/db"
	"github.com/Iceton3000/cardinal-crm/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.userService = services.NewUserService(handler.repositories.Users)
	handler.recordService = services.NewRecordService(handler.repositories.Records, handler.repositories.Trash, handler.location)
	handler.queryService = services.NewQueryService(handler.repositories.Records, handler.repositories.DNC, handler.repositories.Users, handler.location)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.loginLimiter == nil {
		handler.loginLimiter = newLoginLimiter()
	}

	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.userService == nil {
		handler.userService = services.NewUserService(handler.repositories.Users)
	}
	if handler.recordService == nil {
		handler.recordService = services.NewRecordService(handler.repositories.Records, handler.repositories.Trash, handler.location)
	}
	if handler.queryService == nil {
		handler.queryService = services.NewQueryService(handler.repositories.Records, handler.repositories.DNC, handler.repositories.Users, handler.location)
	}
}
