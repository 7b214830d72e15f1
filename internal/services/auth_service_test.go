package services

import (
	"errors"
	"testing"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

func TestBootstrapFirstAdminDefaultsAndCloses(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewAuthService(repositories.Users)

	needed, err := service.NeedsBootstrap()
	if err != nil {
		t.Fatalf("needs bootstrap: %v", err)
	}
	if !needed {
		t.Fatalf("expected fresh database to need bootstrap")
	}

	admin, err := service.BootstrapFirstAdmin("Dana", "Dana@Example.COM ", "")
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("bootstrap role = %q, want admin", admin.Role)
	}
	if admin.Email != "dana@example.com" {
		t.Fatalf("bootstrap email = %q, want normalized", admin.Email)
	}
	if admin.PIN != models.DefaultPIN {
		t.Fatalf("blank PIN should fall back to the default, got %q", admin.PIN)
	}

	if _, err := service.BootstrapFirstAdmin("Eve", "eve@example.com", "5555"); !errors.Is(err, ErrAlreadyBootstrapped) {
		t.Fatalf("second bootstrap error = %v, want ErrAlreadyBootstrapped", err)
	}
}

func TestLoginErrorTaxonomy(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewAuthService(repositories.Users)

	if _, err := service.BootstrapFirstAdmin("Dana", "dana@example.com", "2468"); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if _, err := service.Login("nobody@example.com", "2468"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("unknown email error = %v, want ErrUserNotFound", err)
	}
	if _, err := service.Login("dana@example.com", "0000"); !errors.Is(err, ErrWrongPIN) {
		t.Fatalf("wrong PIN error = %v, want ErrWrongPIN", err)
	}

	user, err := service.Login(" DANA@example.com ", " 2468 ")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "dana@example.com" {
		t.Fatalf("login returned %q, want the bootstrapped admin", user.Email)
	}
}

func TestLoginRejectsDeactivatedUsers(t *testing.T) {
	repositories := newTestRepositories(t)
	authService := NewAuthService(repositories.Users)
	userService := NewUserService(repositories.Users)

	admin, err := authService.BootstrapFirstAdmin("Dana", "dana@example.com", "2468")
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	agent, err := userService.CreateUser(admin, "Robin", "robin@example.com", models.RoleAgent, "1357")
	if err != nil {
		t.Fatalf("create agent: %v", err)
	}
	if _, err := userService.Deactivate(admin, agent.ID, "", true); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := authService.Login("robin@example.com", "1357"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("deactivated login error = %v, want ErrUserNotFound", err)
	}
}
