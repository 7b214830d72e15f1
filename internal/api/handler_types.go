package api

import (
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/db"
	"github.com/Iceton3000/cardinal-crm/internal/models"
	"github.com/Iceton3000/cardinal-crm/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	loginLimiter *loginLimiter

	repositories  *db.Repositories
	authService   *services.AuthService
	userService   *services.UserService
	recordService *services.RecordService
	queryService  *services.QueryService
}

const authTokenTTL = 7 * 24 * time.Hour

type loginInput struct {
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

type bootstrapInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	PIN   string `json:"pin"`
}

type userInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	PIN   string `json:"pin"`
}

type deactivateInput struct {
	ReassignToEmail string `json:"reassignToEmail"`
	Confirmed       bool   `json:"confirmed"`
}

type saveRecordInput struct {
	models.Record
	NoteDraft                string `json:"noteDraft"`
	ConfirmedWithoutReminder bool   `json:"confirmedWithoutReminder"`
}

type promoteInput struct {
	Stage     string `json:"stage"`
	Confirmed bool   `json:"confirmed"`
}

type deleteRecordInput struct {
	Reason    string `json:"reason"`
	AddToDNC  bool   `json:"addToDnc"`
	Confirmed bool   `json:"confirmed"`
}

type snoozeInput struct {
	Minutes int `json:"minutes"`
}

type bulkReassignInput struct {
	TargetOwnerID *string `json:"targetOwnerId"`
	Confirmed     bool    `json:"confirmed"`
}

type importInput struct {
	Text    string  `json:"text"`
	OwnerID *string `json:"ownerId"`
}
