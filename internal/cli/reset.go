package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/Iceton3000/cardinal-crm/internal/db"
	"github.com/Iceton3000/cardinal-crm/internal/models"
	"github.com/Iceton3000/cardinal-crm/internal/security"
	"gorm.io/gorm"
)

// RunResetPINCommand recovers a locked-out account locally: it generates a
// temporary PIN for the user behind the given email and prints it. Works for
// inactive accounts too, so a sole deactivated admin can be rescued.
func RunResetPINCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	if err := database.Where("lower(trim(email)) = ?", normalizedEmail).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", normalizedEmail)
		}
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPIN, err := security.TemporaryPIN(6)
	if err != nil {
		return fmt.Errorf("generate temporary PIN: %w", err)
	}

	user.PIN = temporaryPIN
	if err := database.Save(&user).Error; err != nil {
		return fmt.Errorf("update user PIN: %w", err)
	}

	fmt.Println("PIN reset successful")
	fmt.Printf("Temporary PIN for %s: %s\n", user.Email, temporaryPIN)
	fmt.Println("Change it from the Users panel after logging in.")

	return nil
}
