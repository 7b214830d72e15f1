package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StageProspect   = "Prospect"
	StageQualified  = "Qualified"
	StageLOA        = "LOA"
	StageContracted = "Contracted"
	StageCustomer   = "Customer"
)

const (
	MeterElectric = "Electric"
	MeterGas      = "Gas"
)

// Stages returns the pipeline stages in promotion order.
func Stages() []string {
	return []string{StageProspect, StageQualified, StageLOA, StageContracted, StageCustomer}
}

func IsValidStage(stage string) bool {
	for _, candidate := range Stages() {
		if candidate == stage {
			return true
		}
	}
	return false
}

func IsValidMeterType(meterType string) bool {
	return meterType == MeterElectric || meterType == MeterGas
}

// Suppliers returns the selectable energy suppliers.
func Suppliers() []string {
	return []string{
		"EDF", "E.ON Next", "Octopus", "British Gas", "SSE/OVO",
		"ScottishPower", "TotalEnergies", "Utilita", "Other",
	}
}

// Record is a lead moving through the sales pipeline. Commercial figures stay
// strings so they round-trip the CSV schema verbatim and tolerate free text.
type Record struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	OwnerID           *string   `gorm:"index" json:"ownerId"`
	Company           string    `json:"company"`
	Contact           string    `json:"contact"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	MeterType         string    `gorm:"not null;default:Electric" json:"meterType"`
	MPANTop           string    `gorm:"column:mpan_top" json:"mpanTop"`
	MPANCore          string    `gorm:"column:mpan_core" json:"mpanCore"`
	MPRN              string    `gorm:"column:mprn" json:"mprn"`
	Supplier          string    `json:"supplier"`
	UnitRatePPKWh     string    `gorm:"column:unit_rate_ppkwh" json:"unitRatePPKWh"`
	StandingChargePPD string    `gorm:"column:standing_charge_ppd" json:"standingChargePPD"`
	CED               string    `gorm:"column:ced" json:"ced"`
	AnnualUsageKWh    string    `gorm:"column:annual_usage_kwh" json:"annualUsageKWh"`
	Stage             string    `gorm:"not null;default:Prospect" json:"stage"`
	Notes             string    `json:"notes"`
	NextCallDate      string    `json:"nextCallDate"`
	NextCallTime      string    `json:"nextCallTime"`
	NextCallNotes     string    `json:"nextCallNotes"`
	CreatedAt         time.Time `gorm:"not null" json:"createdAt"`
}

func (Record) TableName() string {
	return "records"
}

// NewRecord seeds an empty record with defaults and a fresh id.
func NewRecord(ownerID *string) Record {
	return Record{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		MeterType: MeterElectric,
		Stage:     StageProspect,
		CreatedAt: time.Now(),
	}
}
