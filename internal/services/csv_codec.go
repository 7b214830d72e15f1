package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

// ErrEmptyImport signals a CSV with no data rows. Not fatal: callers surface
// it as a zero count.
var ErrEmptyImport = errors.New("csv contains no data rows")

// TemplateFilename is the download name for a header-only CSV.
const TemplateFilename = "crm_template.csv"

// CSVHeaders returns the fixed record schema, column order included.
// Id, owner and creation timestamp are deliberately not part of the schema.
func CSVHeaders() []string {
	return []string{
		"company", "contact", "phone", "email",
		"meterType", "mpanTop", "mpanCore", "mprn",
		"supplier", "unitRatePPKWh", "standingChargePPD", "ced",
		"annualUsageKWh", "stage", "notes",
		"nextCallDate", "nextCallTime", "nextCallNotes",
	}
}

// RecordsToCSV serializes records into schema order with RFC4180 quoting.
func RecordsToCSV(records []models.Record) (string, error) {
	headers := CSVHeaders()

	var output strings.Builder
	writer := csv.NewWriter(&output)
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		row := make([]string, 0, len(headers))
		for _, header := range headers {
			row = append(row, recordSchemaValue(record, header))
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return output.String(), nil
}

// CSVTemplate returns the header row only.
func CSVTemplate() string {
	return strings.Join(CSVHeaders(), ",") + "\n"
}

// ExportFilename embeds the current date into the export name.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("cardinal-crm-%s.csv", now.Format("2006-01-02"))
}

// ParseRecordsCSV parses CSV text into fresh records seeded with defaults
// (new id, no owner, Prospect, Electric) and overwritten by whichever schema
// columns the header names. Short rows degrade to empty cells; unknown
// columns are ignored; CED values run through the normalizer. Returns
// ErrEmptyImport when no data rows survive. Owner assignment is the
// caller's job, never the codec's.
func ParseRecordsCSV(text string) ([]models.Record, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyImport
	}

	headers := make([]string, 0, len(rows[0]))
	for _, header := range rows[0] {
		headers = append(headers, strings.TrimSpace(header))
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowIsBlank(row) {
			continue
		}

		record := models.NewRecord(nil)
		for index, header := range headers {
			value := ""
			if index < len(row) {
				value = row[index]
			}
			setRecordSchemaValue(&record, header, value)
		}

		if record.MeterType == "" {
			record.MeterType = models.MeterElectric
		}
		if record.Stage == "" {
			record.Stage = models.StageProspect
		}
		record.CED = NormalizeContractEndDate(record.CED)
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrEmptyImport
	}
	return records, nil
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func recordSchemaValue(record models.Record, header string) string {
	switch header {
	case "company":
		return record.Company
	case "contact":
		return record.Contact
	case "phone":
		return record.Phone
	case "email":
		return record.Email
	case "meterType":
		return record.MeterType
	case "mpanTop":
		return record.MPANTop
	case "mpanCore":
		return record.MPANCore
	case "mprn":
		return record.MPRN
	case "supplier":
		return record.Supplier
	case "unitRatePPKWh":
		return record.UnitRatePPKWh
	case "standingChargePPD":
		return record.StandingChargePPD
	case "ced":
		return record.CED
	case "annualUsageKWh":
		return record.AnnualUsageKWh
	case "stage":
		return record.Stage
	case "notes":
		return record.Notes
	case "nextCallDate":
		return record.NextCallDate
	case "nextCallTime":
		return record.NextCallTime
	case "nextCallNotes":
		return record.NextCallNotes
	default:
		return ""
	}
}

func setRecordSchemaValue(record *models.Record, header string, value string) {
	switch header {
	case "company":
		record.Company = value
	case "contact":
		record.Contact = value
	case "phone":
		record.Phone = value
	case "email":
		record.Email = value
	case "meterType":
		record.MeterType = value
	case "mpanTop":
		record.MPANTop = value
	case "mpanCore":
		record.MPANCore = value
	case "mprn":
		record.MPRN = value
	case "supplier":
		record.Supplier = value
	case "unitRatePPKWh":
		record.UnitRatePPKWh = value
	case "standingChargePPD":
		record.StandingChargePPD = value
	case "ced":
		record.CED = value
	case "annualUsageKWh":
		record.AnnualUsageKWh = value
	case "stage":
		record.Stage = value
	case "notes":
		record.Notes = value
	case "nextCallDate":
		record.NextCallDate = value
	case "nextCallTime":
		record.NextCallTime = value
	case "nextCallNotes":
		record.NextCallNotes = value
	}
}
