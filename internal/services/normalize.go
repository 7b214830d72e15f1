package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonDigitPattern = regexp.MustCompile(`\D`)
var cedDayFirstPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})$`)
var cedYearFirstPattern = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)

// NormalizePhone strips everything but digits. The result is the canonical
// key for duplicate detection and DNC matching.
func NormalizePhone(raw string) string {
	return nonDigitPattern.ReplaceAllString(raw, "")
}

// NormalizeContractEndDate converts DD/MM/YYYY, DD-MM-YYYY, DD.MM.YYYY,
// YYYY/MM/DD and YYYY-MM-DD to zero-padded ISO YYYY-MM-DD. Two-digit years
// become 20yy. Anything else passes through unchanged; callers must tolerate
// free-text CED values.
func NormalizeContractEndDate(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	candidate := strings.ReplaceAll(trimmed, ".", "/")

	if matches := cedDayFirstPattern.FindStringSubmatch(candidate); matches != nil {
		day, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		year, _ := strconv.Atoi(matches[3])
		if len(matches[3]) == 2 {
			year += 2000
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}

	if matches := cedYearFirstPattern.FindStringSubmatch(candidate); matches != nil {
		year, _ := strconv.Atoi(matches[1])
		month, _ := strconv.Atoi(matches[2])
		day, _ := strconv.Atoi(matches[3])
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	}

	return candidate
}

const isoDateLayout = "2006-01-02"

// CombineCallInstant merges a date string and an optional HH:MM into one
// instant. The second return is false when the date is absent or unparsable.
func CombineCallInstant(dateStr string, timeStr string, location *time.Location) (time.Time, bool) {
	if location == nil {
		location = time.Local
	}
	trimmedDate := strings.TrimSpace(dateStr)
	if trimmedDate == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(isoDateLayout, trimmedDate, location)
	if err != nil {
		return time.Time{}, false
	}

	hour, minute := 0, 0
	if parts := strings.SplitN(strings.TrimSpace(timeStr), ":", 2); len(parts) == 2 {
		if parsedHour, err := strconv.Atoi(parts[0]); err == nil {
			hour = parsedHour
		}
		if parsedMinute, err := strconv.Atoi(parts[1]); err == nil {
			minute = parsedMinute
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, location), true
}

// IsCallOverdue reports whether the combined call instant lies strictly in
// the past. Records without an instant are never overdue.
func IsCallOverdue(dateStr string, timeStr string, now time.Time, location *time.Location) bool {
	instant, ok := CombineCallInstant(dateStr, timeStr, location)
	return ok && instant.Before(now)
}

// IsSameDay reports whether the ISO date string falls on the same calendar
// day as now.
func IsSameDay(dateStr string, now time.Time, location *time.Location) bool {
	if location == nil {
		location = time.Local
	}
	day, err := time.ParseInLocation(isoDateLayout, strings.TrimSpace(dateStr), location)
	if err != nil {
		return false
	}
	localNow := now.In(location)
	return day.Year() == localNow.Year() && day.Month() == localNow.Month() && day.Day() == localNow.Day()
}

// AppendTimestampedNote prepends a stamped note line to the append-only log,
// newest first. A blank addition leaves the log untouched.
func AppendTimestampedNote(notes string, addition string, now time.Time) string {
	trimmed := strings.TrimSpace(addition)
	if trimmed == "" {
		return notes
	}
	return fmt.Sprintf("[%s] %s\n%s", now.Format("2006-01-02 15:04"), trimmed, notes)
}
