package services

import (
	"errors"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

// ErrPermissionDenied is the uniform outcome for a command the acting role
// may not perform.
var ErrPermissionDenied = errors.New("permission denied")

func IsAdminUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleAdmin
}

func IsAgentUser(user *models.User) bool {
	return user != nil && user.Role == models.RoleAgent
}

func CanManageUsers(user *models.User) bool {
	return IsAdminUser(user)
}

func CanDeleteRecords(user *models.User) bool {
	return IsAdminUser(user)
}

func CanViewTrash(user *models.User) bool {
	return IsAdminUser(user)
}

func CanImportExport(user *models.User) bool {
	return IsAdminUser(user)
}

func CanBulkReassign(user *models.User) bool {
	return IsAdminUser(user)
}
