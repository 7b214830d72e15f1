package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// DefaultPIN is applied when a user is created with a blank PIN.
const DefaultPIN = "1234"

// User is a CRM account. PINs are stored in clear and compared as strings;
// this is a local, demo-grade login, not real authentication.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"not null;default:agent" json:"role"`
	PIN       string    `gorm:"column:pin;not null" json:"-"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleAgent
}

// NewUser builds a user with a fresh id, defaulting the PIN when blank.
func NewUser(name string, email string, role string, pin string) User {
	if pin == "" {
		pin = DefaultPIN
	}
	return User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		PIN:       pin,
		Active:    true,
		CreatedAt: time.Now(),
	}
}
