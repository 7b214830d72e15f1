package db

import "gorm.io/gorm"

type Repositories struct {
	Users   *UserRepository
	Records *RecordRepository
	Trash   *TrashRepository
	DNC     *DNCRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:   NewUserRepository(database),
		Records: NewRecordRepository(database),
		Trash:   NewTrashRepository(database),
		DNC:     NewDNCRepository(database),
	}
}
