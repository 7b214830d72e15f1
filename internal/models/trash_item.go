package models

import "time"

// DeleteReasons returns the selectable reasons for killing a lead.
func DeleteReasons() []string {
	return []string{
		"Not interested",
		"Dead line",
		"Business closed",
		"Moved premises",
		"Duplicate lead",
		"Wrong contact",
	}
}

// TrashItem is a soft-deleted record snapshot. The record id is preserved so
// a restore reinstates the same record.
type TrashItem struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	OwnerID           *string   `json:"ownerId"`
	Company           string    `json:"company"`
	Contact           string    `json:"contact"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	MeterType         string    `json:"meterType"`
	MPANTop           string    `gorm:"column:mpan_top" json:"mpanTop"`
	MPANCore          string    `gorm:"column:mpan_core" json:"mpanCore"`
	MPRN              string    `gorm:"column:mprn" json:"mprn"`
	Supplier          string    `json:"supplier"`
	UnitRatePPKWh     string    `gorm:"column:unit_rate_ppkwh" json:"unitRatePPKWh"`
	StandingChargePPD string    `gorm:"column:standing_charge_ppd" json:"standingChargePPD"`
	CED               string    `gorm:"column:ced" json:"ced"`
	AnnualUsageKWh    string    `gorm:"column:annual_usage_kwh" json:"annualUsageKWh"`
	Stage             string    `json:"stage"`
	Notes             string    `json:"notes"`
	NextCallDate      string    `json:"nextCallDate"`
	NextCallTime      string    `json:"nextCallTime"`
	NextCallNotes     string    `json:"nextCallNotes"`
	CreatedAt         time.Time `json:"createdAt"`
	DeletedAt         time.Time `gorm:"not null" json:"deletedAt"`
	DeleteReason      string    `json:"deleteReason"`
}

func (TrashItem) TableName() string {
	return "trash_items"
}

// TrashItemFromRecord snapshots a live record with deletion metadata.
func TrashItemFromRecord(record Record, reason string, deletedAt time.Time) TrashItem {
	return TrashItem{
		ID:                record.ID,
		OwnerID:           record.OwnerID,
		Company:           record.Company,
		Contact:           record.Contact,
		Phone:             record.Phone,
		Email:             record.Email,
		MeterType:         record.MeterType,
		MPANTop:           record.MPANTop,
		MPANCore:          record.MPANCore,
		MPRN:              record.MPRN,
		Supplier:          record.Supplier,
		UnitRatePPKWh:     record.UnitRatePPKWh,
		StandingChargePPD: record.StandingChargePPD,
		CED:               record.CED,
		AnnualUsageKWh:    record.AnnualUsageKWh,
		Stage:             record.Stage,
		Notes:             record.Notes,
		NextCallDate:      record.NextCallDate,
		NextCallTime:      record.NextCallTime,
		NextCallNotes:     record.NextCallNotes,
		CreatedAt:         record.CreatedAt,
		DeletedAt:         deletedAt,
		DeleteReason:      reason,
	}
}

// ToRecord strips the deletion metadata and yields the original record.
func (item TrashItem) ToRecord() Record {
	return Record{
		ID:                item.ID,
		OwnerID:           item.OwnerID,
		Company:           item.Company,
		Contact:           item.Contact,
		Phone:             item.Phone,
		Email:             item.Email,
		MeterType:         item.MeterType,
		MPANTop:           item.MPANTop,
		MPANCore:          item.MPANCore,
		MPRN:              item.MPRN,
		Supplier:          item.Supplier,
		UnitRatePPKWh:     item.UnitRatePPKWh,
		StandingChargePPD: item.StandingChargePPD,
		CED:               item.CED,
		AnnualUsageKWh:    item.AnnualUsageKWh,
		Stage:             item.Stage,
		Notes:             item.Notes,
		NextCallDate:      item.NextCallDate,
		NextCallTime:      item.NextCallTime,
		NextCallNotes:     item.NextCallNotes,
		CreatedAt:         item.CreatedAt,
	}
}
