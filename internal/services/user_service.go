package services

import (
	"regexp"
	"strings"

	"github.com/Iceton3000/cardinal-crm/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()
var pinPattern = regexp.MustCompile(`^\d{4,6}$`)

type userInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

func validateUserInput(name string, email string, pin string) error {
	input := userInput{
		Name:  strings.TrimSpace(name),
		Email: NormalizeEmail(email),
	}
	if err := validate.Struct(input); err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok || len(fieldErrors) == 0 {
			return &ValidationError{Message: "invalid user input"}
		}
		switch fieldErrors[0].Field() {
		case "Name":
			return &ValidationError{Message: "name is required"}
		default:
			return &ValidationError{Message: "a valid email is required"}
		}
	}
	if trimmedPIN := strings.TrimSpace(pin); trimmedPIN != "" && !pinPattern.MatchString(trimmedPIN) {
		return &ValidationError{Message: "PIN must be 4-6 digits"}
	}
	return nil
}

type UserStoreRepository interface {
	CountUsers() (int64, error)
	List() ([]models.User, error)
	ListActive() ([]models.User, error)
	FindByID(userID string) (models.User, error)
	FindActiveByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	CountRecordsOwnedBy(userID string) (int64, error)
	Create(user *models.User) error
	Save(user *models.User) error
	Deactivate(userID string, reassignTo *string) (int64, error)
}

type UserService struct {
	users UserStoreRepository
}

func NewUserService(users UserStoreRepository) *UserService {
	return &UserService{users: users}
}

func (service *UserService) ListUsers(actor models.User) ([]models.User, error) {
	if !CanManageUsers(&actor) {
		return nil, ErrPermissionDenied
	}
	return service.users.List()
}

func (service *UserService) ListActiveUsers() ([]models.User, error) {
	return service.users.ListActive()
}

// CreateUser adds a staff account. Admin-only. A blank role defaults to
// agent, a blank PIN to the shared default.
func (service *UserService) CreateUser(actor models.User, name string, email string, role string, pin string) (models.User, error) {
	if !CanManageUsers(&actor) {
		return models.User{}, ErrPermissionDenied
	}
	if role == "" {
		role = models.RoleAgent
	}
	if !models.IsValidRole(role) {
		return models.User{}, &ValidationError{Message: "role must be admin or agent"}
	}
	if err := validateUserInput(name, email, pin); err != nil {
		return models.User{}, err
	}

	normalizedEmail := NormalizeEmail(email)
	exists, err := service.users.ExistsByNormalizedEmail(normalizedEmail)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, &ValidationError{Message: "email already in use"}
	}

	user := models.NewUser(strings.TrimSpace(name), normalizedEmail, role, strings.TrimSpace(pin))
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser edits name, email and role. The stored PIN survives a blank
// submission so admins can edit accounts without resetting credentials.
func (service *UserService) UpdateUser(actor models.User, userID string, name string, email string, role string, pin string) (models.User, error) {
	if !CanManageUsers(&actor) {
		return models.User{}, ErrPermissionDenied
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}

	if role == "" {
		role = user.Role
	}
	if !models.IsValidRole(role) {
		return models.User{}, &ValidationError{Message: "role must be admin or agent"}
	}
	if err := validateUserInput(name, email, pin); err != nil {
		return models.User{}, err
	}

	normalizedEmail := NormalizeEmail(email)
	if normalizedEmail != user.Email {
		exists, err := service.users.ExistsByNormalizedEmail(normalizedEmail)
		if err != nil {
			return models.User{}, err
		}
		if exists {
			return models.User{}, &ValidationError{Message: "email already in use"}
		}
	}

	user.Name = strings.TrimSpace(name)
	user.Email = normalizedEmail
	user.Role = role
	if trimmedPIN := strings.TrimSpace(pin); trimmedPIN != "" {
		user.PIN = trimmedPIN
	}

	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

type DeactivationResult struct {
	User              models.User
	RecordsReassigned int64
	ReassignedTo      *models.User
}

// Deactivate retires an account without deleting it; historical ownership
// attribution stays auditable. When reassignToEmail names another active
// user, the deactivated user's records migrate to them in the same commit.
// An empty or unresolvable target simply skips the migration.
func (service *UserService) Deactivate(actor models.User, userID string, reassignToEmail string, confirmed bool) (DeactivationResult, error) {
	if !CanManageUsers(&actor) {
		return DeactivationResult{}, ErrPermissionDenied
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return DeactivationResult{}, err
	}

	if !confirmed {
		owned, err := service.users.CountRecordsOwnedBy(userID)
		if err != nil {
			return DeactivationResult{}, err
		}
		return DeactivationResult{}, &ConfirmationRequiredError{
			Action:   ActionDeactivateUser,
			Affected: int(owned),
		}
	}

	var reassignTo *string
	var target *models.User
	if email := NormalizeEmail(reassignToEmail); email != "" {
		candidate, err := service.users.FindActiveByNormalizedEmail(email)
		if err == nil && candidate.ID != userID {
			reassignTo = &candidate.ID
			target = &candidate
		}
	}

	migrated, err := service.users.Deactivate(userID, reassignTo)
	if err != nil {
		return DeactivationResult{}, err
	}

	user.Active = false
	return DeactivationResult{
		User:              user,
		RecordsReassigned: migrated,
		ReassignedTo:      target,
	}, nil
}
