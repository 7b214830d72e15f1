package services

import (
	"sort"
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

// DueReminders returns the role-scoped, DNC-aware records whose next call is
// due today or overdue, ascending by call instant. Stage and search filters
// deliberately do not apply: reminders are their own view.
func DueReminders(viewer models.User, records []models.Record, dncSet map[string]struct{}, state QueryState, now time.Time, location *time.Location) []models.Record {
	due := make([]models.Record, 0)
	for _, record := range records {
		if !recordVisibleToViewer(viewer, record, state.OwnerFilter) {
			continue
		}
		if state.HideDNC {
			if _, listed := dncSet[NormalizePhone(record.Phone)]; listed {
				continue
			}
		}
		if record.NextCallDate == "" {
			continue
		}
		if !IsSameDay(record.NextCallDate, now, location) && !IsCallOverdue(record.NextCallDate, record.NextCallTime, now, location) {
			continue
		}
		due = append(due, record)
	}

	sort.SliceStable(due, func(left int, right int) bool {
		leftInstant, leftOK := CombineCallInstant(due[left].NextCallDate, due[left].NextCallTime, location)
		rightInstant, rightOK := CombineCallInstant(due[right].NextCallDate, due[right].NextCallTime, location)
		if leftOK != rightOK {
			return leftOK
		}
		if !leftOK {
			return false
		}
		return leftInstant.Before(rightInstant)
	})

	return due
}

// DuplicatePhones flags every normalized phone appearing at least twice in
// the full, unfiltered record set, independent of role and filters.
func DuplicatePhones(records []models.Record) map[string]struct{} {
	counts := make(map[string]int, len(records))
	for _, record := range records {
		phone := NormalizePhone(record.Phone)
		if phone == "" {
			continue
		}
		counts[phone]++
	}

	duplicates := make(map[string]struct{})
	for phone, count := range counts {
		if count > 1 {
			duplicates[phone] = struct{}{}
		}
	}
	return duplicates
}
