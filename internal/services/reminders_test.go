package services

import (
	"testing"
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

func TestDueRemindersOrdersDueBeforeLater(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	overdue := ownedRecord("overdue", "agent-1")
	overdue.NextCallDate = "2024-06-09"
	dueToday := ownedRecord("today", "agent-1")
	dueToday.NextCallDate = "2024-06-10"
	dueToday.NextCallTime = "16:00"
	future := ownedRecord("future", "agent-1")
	future.NextCallDate = "2024-06-11"
	unscheduled := ownedRecord("unscheduled", "agent-1")

	records := []models.Record{dueToday, future, unscheduled, overdue}
	due := DueReminders(testAgent("agent-1"), records, nil, DefaultQueryState(), now, time.UTC)

	if len(due) != 2 {
		t.Fatalf("expected overdue and due-today records, got %d", len(due))
	}
	if due[0].ID != "overdue" || due[1].ID != "today" {
		t.Fatalf("expected ascending call order, got %+v", due)
	}
}

func TestDueRemindersScopedByRole(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	mine := ownedRecord("mine", "agent-1")
	mine.NextCallDate = "2024-06-09"
	theirs := ownedRecord("theirs", "agent-2")
	theirs.NextCallDate = "2024-06-09"
	unowned := ownedRecord("unowned", "")
	unowned.NextCallDate = "2024-06-09"

	records := []models.Record{mine, theirs, unowned}

	due := DueReminders(testAgent("agent-1"), records, nil, DefaultQueryState(), now, time.UTC)
	if len(due) != 1 || due[0].ID != "mine" {
		t.Fatalf("expected only the agent's reminder, got %+v", due)
	}

	due = DueReminders(testAdmin(), records, nil, DefaultQueryState(), now, time.UTC)
	if len(due) != 3 {
		t.Fatalf("expected all reminders for admin, got %d", len(due))
	}
}

func TestDueRemindersRespectsDNC(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	listed := ownedRecord("listed", "agent-1")
	listed.NextCallDate = "2024-06-09"
	listed.Phone = "07123456789"

	state := DefaultQueryState()
	due := DueReminders(testAgent("agent-1"), []models.Record{listed}, map[string]struct{}{"07123456789": {}}, state, now, time.UTC)
	if len(due) != 0 {
		t.Fatalf("expected DNC reminder suppressed, got %+v", due)
	}

	state.HideDNC = false
	due = DueReminders(testAgent("agent-1"), []models.Record{listed}, map[string]struct{}{"07123456789": {}}, state, now, time.UTC)
	if len(due) != 1 {
		t.Fatalf("expected reminder when DNC hiding is off, got %d", len(due))
	}
}

func TestDuplicatePhonesNormalizedOverFullSet(t *testing.T) {
	first := ownedRecord("a", "agent-1")
	first.Phone = "0712345678"
	second := ownedRecord("b", "agent-2")
	second.Phone = "07123 45678"
	third := ownedRecord("c", "")
	third.Phone = "0799999999"
	blank := ownedRecord("d", "agent-1")

	duplicates := DuplicatePhones([]models.Record{first, second, third, blank})
	if len(duplicates) != 1 {
		t.Fatalf("expected exactly one duplicate phone, got %v", duplicates)
	}
	if _, found := duplicates["0712345678"]; !found {
		t.Fatalf("expected 0712345678 flagged, got %v", duplicates)
	}
}

func TestDuplicatePhonesIgnoresEmpty(t *testing.T) {
	first := ownedRecord("a", "agent-1")
	second := ownedRecord("b", "agent-1")

	duplicates := DuplicatePhones([]models.Record{first, second})
	if len(duplicates) != 0 {
		t.Fatalf("expected no duplicates for blank phones, got %v", duplicates)
	}
}
