package db

import (
	"github.com/Iceton3000/cardinal-crm/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, "id = ?", userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindActiveByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.
		Where("lower(trim(email)) = ? AND active = ?", email, true).
		First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) ListActive() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) CountRecordsOwnedBy(userID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Record{}).
		Where("owner_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Deactivate flips the active flag and, when reassignTo is non-nil, migrates
// every record owned by the user in the same transaction.
func (repo *UserRepository) Deactivate(userID string, reassignTo *string) (int64, error) {
	var migrated int64
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("active", false).Error; err != nil {
			return err
		}
		if reassignTo == nil {
			return nil
		}
		result := tx.Model(&models.Record{}).
			Where("owner_id = ?", userID).
			Update("owner_id", *reassignTo)
		if result.Error != nil {
			return result.Error
		}
		migrated = result.RowsAffected
		return nil
	})
	return migrated, err
}
