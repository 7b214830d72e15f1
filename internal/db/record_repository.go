package db

import (
	"time"

	"github.com/Iceton3000/cardinal-crm/internal/models"
	"gorm.io/gorm"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

// List returns the live record set, newest first.
func (repo *RecordRepository) List() ([]models.Record, error) {
	records := make([]models.Record, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) FindByID(recordID string) (models.Record, error) {
	var record models.Record
	if err := repo.database.First(&record, "id = ?", recordID).Error; err != nil {
		return models.Record{}, err
	}
	return record, nil
}

func (repo *RecordRepository) Create(record *models.Record) error {
	return repo.database.Create(record).Error
}

func (repo *RecordRepository) CreateBatch(records []models.Record) error {
	if len(records) == 0 {
		return nil
	}
	return repo.database.Create(&records).Error
}

// Upsert inserts the record when absent and replaces it wholesale when
// present. All edits funnel through here.
func (repo *RecordRepository) Upsert(record *models.Record) error {
	return repo.database.Save(record).Error
}

// MoveToTrash removes a live record and writes its trash snapshot, pushing
// the normalized phone onto the DNC list when dncPhone is non-empty. The
// three writes commit atomically.
func (repo *RecordRepository) MoveToTrash(item models.TrashItem, dncPhone string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Record{}, "id = ?", item.ID).Error; err != nil {
			return err
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		if dncPhone == "" {
			return nil
		}
		entry := models.DNCEntry{Phone: dncPhone, AddedAt: item.DeletedAt}
		return tx.Where(models.DNCEntry{Phone: dncPhone}).FirstOrCreate(&entry).Error
	})
}

// RestoreFromTrash reinstates a trash snapshot as a live record and drops
// the trash entry atomically.
func (repo *RecordRepository) RestoreFromTrash(item models.TrashItem) (models.Record, error) {
	record := item.ToRecord()
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TrashItem{}, "id = ?", item.ID).Error
	})
	if err != nil {
		return models.Record{}, err
	}
	return record, nil
}

// ReassignOwner repoints every record in recordIDs at ownerID (nil clears
// the assignment) and reports how many rows changed.
func (repo *RecordRepository) ReassignOwner(recordIDs []string, ownerID *string) (int64, error) {
	if len(recordIDs) == 0 {
		return 0, nil
	}
	result := repo.database.Model(&models.Record{}).
		Where("id IN ?", recordIDs).
		Update("owner_id", ownerID)
	return result.RowsAffected, result.Error
}

type TrashRepository struct {
	database *gorm.DB
}

func NewTrashRepository(database *gorm.DB) *TrashRepository {
	return &TrashRepository{database: database}
}

// List returns trash items, most recently deleted first.
func (repo *TrashRepository) List() ([]models.TrashItem, error) {
	items := make([]models.TrashItem, 0)
	if err := repo.database.Order("deleted_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *TrashRepository) FindByID(itemID string) (models.TrashItem, error) {
	var item models.TrashItem
	if err := repo.database.First(&item, "id = ?", itemID).Error; err != nil {
		return models.TrashItem{}, err
	}
	return item, nil
}

func (repo *TrashRepository) Delete(itemID string) error {
	return repo.database.Delete(&models.TrashItem{}, "id = ?", itemID).Error
}

func (repo *TrashRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.TrashItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type DNCRepository struct {
	database *gorm.DB
}

func NewDNCRepository(database *gorm.DB) *DNCRepository {
	return &DNCRepository{database: database}
}

// Add records a normalized phone, quietly keeping set semantics on repeats.
func (repo *DNCRepository) Add(phone string, addedAt time.Time) error {
	if addedAt.IsZero() {
		addedAt = time.Now()
	}
	entry := models.DNCEntry{Phone: phone, AddedAt: addedAt}
	return repo.database.Where(models.DNCEntry{Phone: phone}).FirstOrCreate(&entry).Error
}

func (repo *DNCRepository) Has(phone string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.DNCEntry{}).
		Where("phone = ?", phone).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// PhoneSet loads the whole list as a membership set for the query engine.
func (repo *DNCRepository) PhoneSet() (map[string]struct{}, error) {
	entries := make([]models.DNCEntry, 0)
	if err := repo.database.Find(&entries).Error; err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		set[entry.Phone] = struct{}{}
	}
	return set, nil
}
