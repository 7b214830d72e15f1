package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

func TestDueRemindersOverHTTP(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "Dana", "dana@example.com", models.RoleAdmin, "2468")
	adminCookie := loginAndExtractAuthCookie(t, app, "dana@example.com", "2468")

	overdue := models.NewRecord(nil)
	overdue.Company = "Overdue Ltd"
	overdue.NextCallDate = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	future := models.NewRecord(nil)
	future.NextCallDate = time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")
	for _, record := range []models.Record{overdue, future} {
		record := record
		if err := database.Create(&record).Error; err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	response := getJSON(t, app, adminCookie, "/api/reminders/due")
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("due status = %d", response.StatusCode)
	}
	due := []models.Record{}
	decodeJSONBody(t, response.Body, &due)
	if len(due) != 1 || due[0].ID != overdue.ID {
		t.Fatalf("due = %d records, want only the overdue one", len(due))
	}
}

func TestDuplicatePhonesOverHTTP(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	createTestUser(t, database, "Dana", "dana@example.com", models.RoleAdmin, "2468")
	adminCookie := loginAndExtractAuthCookie(t, app, "dana@example.com", "2468")

	for _, phone := range []string{"07700 900123", "07700-900-123", "07700 111222"} {
		record := models.NewRecord(nil)
		record.Phone = phone
		if err := database.Create(&record).Error; err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	response := getJSON(t, app, adminCookie, "/api/reminders/duplicates")
	defer response.Body.Close()
	duplicates := map[string][]string{}
	decodeJSONBody(t, response.Body, &duplicates)
	if len(duplicates["phones"]) != 1 || duplicates["phones"][0] != "07700900123" {
		t.Fatalf("duplicate phones = %v, want the shared normalized number", duplicates["phones"])
	}
}
