package services

import (
	"errors"
	"testing"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

func isValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

func TestCreateUserValidationAndDuplicates(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewUserService(repositories.Users)
	admin := testAdmin()
	if err := repositories.Users.Create(&admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	if _, err := service.CreateUser(admin, "", "robin@example.com", "", ""); !isValidationError(err) {
		t.Fatalf("blank name error = %v, want validation error", err)
	}
	if _, err := service.CreateUser(admin, "Robin", "not-an-email", "", ""); !isValidationError(err) {
		t.Fatalf("bad email error = %v, want validation error", err)
	}
	if _, err := service.CreateUser(admin, "Robin", "robin@example.com", "", "12"); !isValidationError(err) {
		t.Fatalf("short PIN error = %v, want validation error", err)
	}
	if _, err := service.CreateUser(admin, "Robin", "robin@example.com", "librarian", ""); !isValidationError(err) {
		t.Fatalf("unknown role error = %v, want validation error", err)
	}

	agent, err := service.CreateUser(admin, "Robin", "Robin@Example.com", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if agent.Role != models.RoleAgent {
		t.Fatalf("blank role defaulted to %q, want agent", agent.Role)
	}
	if agent.PIN != models.DefaultPIN {
		t.Fatalf("blank PIN defaulted to %q, want %q", agent.PIN, models.DefaultPIN)
	}

	if _, err := service.CreateUser(admin, "Other Robin", "ROBIN@example.com", "", ""); !isValidationError(err) {
		t.Fatalf("duplicate email error = %v, want validation error", err)
	}

	if _, err := service.CreateUser(agent, "Sam", "sam@example.com", "", ""); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("agent creating users error = %v, want ErrPermissionDenied", err)
	}
}

func TestUpdateUserKeepsPINOnBlankSubmission(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewUserService(repositories.Users)
	admin := testAdmin()
	if err := repositories.Users.Create(&admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	agent, err := service.CreateUser(admin, "Robin", "robin@example.com", "", "9876")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	edited, err := service.UpdateUser(admin, agent.ID, "Robin Q", "robin@example.com", models.RoleAdmin, "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if edited.PIN != "9876" {
		t.Fatalf("blank PIN edit changed stored PIN to %q", edited.PIN)
	}
	if edited.Role != models.RoleAdmin || edited.Name != "Robin Q" {
		t.Fatalf("edit did not apply: %+v", edited)
	}

	stored, err := repositories.Users.FindByID(agent.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PIN != "9876" {
		t.Fatalf("stored PIN = %q after blank edit", stored.PIN)
	}
}

func TestDeactivateReassignsOwnedRecords(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewUserService(repositories.Users)
	admin := testAdmin()
	if err := repositories.Users.Create(&admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	leaving, err := service.CreateUser(admin, "Robin", "robin@example.com", "", "")
	if err != nil {
		t.Fatalf("create leaving agent: %v", err)
	}
	staying, err := service.CreateUser(admin, "Sam", "sam@example.com", "", "")
	if err != nil {
		t.Fatalf("create staying agent: %v", err)
	}

	for index := 0; index < 3; index++ {
		record := models.NewRecord(&leaving.ID)
		if err := repositories.Records.Create(&record); err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	_, err = service.Deactivate(admin, leaving.ID, "sam@example.com", false)
	var confirmation *ConfirmationRequiredError
	if !errors.As(err, &confirmation) {
		t.Fatalf("unconfirmed deactivate error = %v, want confirmation", err)
	}
	if confirmation.Action != ActionDeactivateUser || confirmation.Affected != 3 {
		t.Fatalf("confirmation = %+v, want deactivate_user over 3 records", confirmation)
	}

	result, err := service.Deactivate(admin, leaving.ID, "sam@example.com", true)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if result.RecordsReassigned != 3 {
		t.Fatalf("reassigned %d records, want 3", result.RecordsReassigned)
	}
	if result.ReassignedTo == nil || result.ReassignedTo.ID != staying.ID {
		t.Fatalf("reassignment target = %+v, want Sam", result.ReassignedTo)
	}

	records, err := repositories.Records.List()
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	for _, record := range records {
		if record.OwnerID == nil || *record.OwnerID != staying.ID {
			t.Fatalf("record %s still owned by %v", record.ID, record.OwnerID)
		}
	}

	stored, err := repositories.Users.FindByID(leaving.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Active {
		t.Fatalf("user still active after deactivation")
	}
}

func TestDeactivateWithoutTargetLeavesOwnership(t *testing.T) {
	repositories := newTestRepositories(t)
	service := NewUserService(repositories.Users)
	admin := testAdmin()
	if err := repositories.Users.Create(&admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	leaving, err := service.CreateUser(admin, "Robin", "robin@example.com", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	record := models.NewRecord(&leaving.ID)
	if err := repositories.Records.Create(&record); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	result, err := service.Deactivate(admin, leaving.ID, "", true)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if result.RecordsReassigned != 0 || result.ReassignedTo != nil {
		t.Fatalf("expected no migration, got %+v", result)
	}

	stored, err := repositories.Records.FindByID(record.ID)
	if err != nil {
		t.Fatalf("reload record: %v", err)
	}
	if stored.OwnerID == nil || *stored.OwnerID != leaving.ID {
		t.Fatalf("ownership changed without a target: %v", stored.OwnerID)
	}
}
