package models

import "time"

// DNCEntry is one normalized phone number on the Do-Not-Call list. The
// primary key gives the list its set semantics; entries are never pruned.
type DNCEntry struct {
	Phone   string    `gorm:"primaryKey" json:"phone"`
	AddedAt time.Time `gorm:"not null" json:"addedAt"`
}

func (DNCEntry) TableName() string {
	return "dnc_entries"
}
