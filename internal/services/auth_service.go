package services

import (
	"errors"
	"strings"

	"github.com/Iceton3000/cardinal-crm/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found or inactive")
	ErrWrongPIN            = errors.New("wrong PIN")
	ErrAlreadyBootstrapped = errors.New("an admin account already exists")
)

type AuthUserRepository interface {
	CountUsers() (int64, error)
	FindActiveByNormalizedEmail(email string) (models.User, error)
	FindByID(userID string) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// NeedsBootstrap reports whether the first-admin creation path is open.
func (service *AuthService) NeedsBootstrap() (bool, error) {
	count, err := service.users.CountUsers()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// BootstrapFirstAdmin creates the one-and-only initial account. It is always
// an admin and a blank PIN falls back to the default. The caller starts the
// session for the returned user immediately.
func (service *AuthService) BootstrapFirstAdmin(name string, email string, pin string) (models.User, error) {
	needed, err := service.NeedsBootstrap()
	if err != nil {
		return models.User{}, err
	}
	if !needed {
		return models.User{}, ErrAlreadyBootstrapped
	}

	if err := validateUserInput(name, email, pin); err != nil {
		return models.User{}, err
	}

	admin := models.NewUser(strings.TrimSpace(name), NormalizeEmail(email), models.RoleAdmin, strings.TrimSpace(pin))
	if err := service.users.Create(&admin); err != nil {
		return models.User{}, err
	}
	return admin, nil
}

// Login authenticates an active user by email and cleartext PIN comparison.
// Failures come back as ErrUserNotFound / ErrWrongPIN; neither touches any
// session state here.
func (service *AuthService) Login(email string, pin string) (models.User, error) {
	user, err := service.users.FindActiveByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if strings.TrimSpace(pin) != user.PIN {
		return models.User{}, ErrWrongPIN
	}
	return user, nil
}

func (service *AuthService) FindByID(userID string) (models.User, error) {
	return service.users.FindByID(userID)
}

// NormalizeEmail lowercases and trims the login key.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
