package services

import (
	"strings"
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
)

type RecordStoreRepository interface {
	List() ([]models.Record, error)
	FindByID(recordID string) (models.Record, error)
	Create(record *models.Record) error
	CreateBatch(records []models.Record) error
	Upsert(record *models.Record) error
	MoveToTrash(item models.TrashItem, dncPhone string) error
	RestoreFromTrash(item models.TrashItem) (models.Record, error)
}

type TrashStoreRepository interface {
	List() ([]models.TrashItem, error)
	FindByID(itemID string) (models.TrashItem, error)
	Delete(itemID string) error
}

type RecordService struct {
	records  RecordStoreRepository
	trash    TrashStoreRepository
	location *time.Location
}

func NewRecordService(records RecordStoreRepository, trash TrashStoreRepository, location *time.Location) *RecordService {
	if location == nil {
		location = time.Local
	}
	return &RecordService{records: records, trash: trash, location: location}
}

// CreateFor seeds an empty Prospect owned by the acting user.
func (service *RecordService) CreateFor(actor models.User) (models.Record, error) {
	record := models.NewRecord(&actor.ID)
	if err := service.records.Create(&record); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

type SaveInput struct {
	Record models.Record
	// NoteDraft is stamped and prepended to the notes log on save.
	NoteDraft string
	// ConfirmedWithoutReminder acknowledges saving with no next-call date.
	ConfirmedWithoutReminder bool
}

// Save is the single mutation primitive: insert when the id is new, replace
// wholesale when it exists. Saving without a scheduled next call needs an
// explicit confirmation.
func (service *RecordService) Save(input SaveInput) (models.Record, error) {
	record := input.Record
	if strings.TrimSpace(record.ID) == "" {
		return models.Record{}, &ValidationError{Message: "record id is required"}
	}
	if !models.IsValidStage(record.Stage) {
		return models.Record{}, &ValidationError{Message: "unknown pipeline stage"}
	}
	if !models.IsValidMeterType(record.MeterType) {
		return models.Record{}, &ValidationError{Message: "meter type must be Electric or Gas"}
	}

	if record.NextCallDate == "" && !input.ConfirmedWithoutReminder {
		return models.Record{}, &ConfirmationRequiredError{Action: ActionSaveWithoutReminder, Affected: 1}
	}

	record.CED = NormalizeContractEndDate(record.CED)
	record.Notes = AppendTimestampedNote(record.Notes, input.NoteDraft, time.Now().In(service.location))

	if existing, err := service.records.FindByID(record.ID); err == nil {
		record.CreatedAt = existing.CreatedAt
	} else if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().In(service.location)
	}

	if err := service.records.Upsert(&record); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// PromoteStage moves a record along the pipeline after confirmation.
func (service *RecordService) PromoteStage(recordID string, toStage string, confirmed bool) (models.Record, error) {
	if !models.IsValidStage(toStage) {
		return models.Record{}, &ValidationError{Message: "unknown pipeline stage"}
	}
	record, err := service.records.FindByID(recordID)
	if err != nil {
		return models.Record{}, err
	}
	if !confirmed {
		return models.Record{}, &ConfirmationRequiredError{Action: ActionPromoteStage, Affected: 1}
	}

	record.Stage = toStage
	if err := service.records.Upsert(&record); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// SoftDelete moves a record into trash with a reason, optionally pushing its
// normalized phone onto the DNC list. Delete and DNC push share one commit.
func (service *RecordService) SoftDelete(actor models.User, recordID string, reason string, addToDNC bool, confirmed bool) error {
	if !CanDeleteRecords(&actor) {
		return ErrPermissionDenied
	}
	record, err := service.records.FindByID(recordID)
	if err != nil {
		return err
	}
	if !confirmed {
		return &ConfirmationRequiredError{Action: ActionDeleteRecord, Affected: 1}
	}

	dncPhone := ""
	if addToDNC {
		dncPhone = NormalizePhone(record.Phone)
	}

	item := models.TrashItemFromRecord(record, reason, time.Now().In(service.location))
	return service.records.MoveToTrash(item, dncPhone)
}

func (service *RecordService) ListTrash(actor models.User) ([]models.TrashItem, error) {
	if !CanViewTrash(&actor) {
		return nil, ErrPermissionDenied
	}
	return service.trash.List()
}

// Restore reinstates a trash item as a live record, deletion metadata
// stripped, id preserved.
func (service *RecordService) Restore(actor models.User, itemID string) (models.Record, error) {
	if !CanViewTrash(&actor) {
		return models.Record{}, ErrPermissionDenied
	}
	item, err := service.trash.FindByID(itemID)
	if err != nil {
		return models.Record{}, err
	}
	return service.records.RestoreFromTrash(item)
}

// Purge irreversibly drops a trash entry once confirmed.
func (service *RecordService) Purge(actor models.User, itemID string, confirmed bool) error {
	if !CanViewTrash(&actor) {
		return ErrPermissionDenied
	}
	if _, err := service.trash.FindByID(itemID); err != nil {
		return err
	}
	if !confirmed {
		return &ConfirmationRequiredError{Action: ActionPurgeTrash, Affected: 1}
	}
	return service.trash.Delete(itemID)
}

// Snooze pushes the next-call reminder forward by the given minutes, from
// the current instant when one is set or from now otherwise.
func (service *RecordService) Snooze(recordID string, minutes int, now time.Time) (models.Record, error) {
	record, err := service.records.FindByID(recordID)
	if err != nil {
		return models.Record{}, err
	}

	base, ok := CombineCallInstant(record.NextCallDate, record.NextCallTime, service.location)
	if !ok {
		base = now.In(service.location)
	}
	next := base.Add(time.Duration(minutes) * time.Minute)

	record.NextCallDate = next.Format("2006-01-02")
	record.NextCallTime = next.Format("15:04")
	if err := service.records.Upsert(&record); err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// ImportCSV merges parsed rows into the live set, all assigned to the given
// owner (nil leaves them unassigned). The whole text is parsed before any
// record lands; an empty CSV surfaces ErrEmptyImport and merges nothing.
func (service *RecordService) ImportCSV(actor models.User, text string, ownerID *string) (int, error) {
	if !CanImportExport(&actor) {
		return 0, ErrPermissionDenied
	}

	records, err := ParseRecordsCSV(text)
	if err != nil {
		return 0, err
	}
	for index := range records {
		records[index].OwnerID = ownerID
	}

	if err := service.records.CreateBatch(records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// ExportCSV serializes the full live record set.
func (service *RecordService) ExportCSV(actor models.User) (string, error) {
	if !CanImportExport(&actor) {
		return "", ErrPermissionDenied
	}
	records, err := service.records.List()
	if err != nil {
		return "", err
	}
	return RecordsToCSV(records)
}
