package entity

import (
	"time"

	"gorm.io/gorm"
)

// Prescription status values. The column is an open enumeration: statuses
// other than the ones below appear as the dispensation workflow evolves and
// must be passed through verbatim.
const (
	PrescriptionStatusAvailable = "AVAILABLE"
	PrescriptionStatusDispensed = "DISPENSED"
)

// Prescription is a single prescription issued by a medic to a patient.
// ProductID is the join key into the external DNMA drug catalog and is
// never resolved locally.
type Prescription struct {
	ID             string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Code           string         `gorm:"type:varchar(50);index" json:"code"`
	Status         string         `gorm:"type:varchar(50);not null;index" json:"status"`
	MedicID        string         `gorm:"type:varchar(36);not null;index" json:"medic_id"`
	PatientID      string         `gorm:"type:varchar(36);not null;index" json:"patient_id"`
	ProductID      string         `gorm:"type:varchar(36);not null" json:"product_id"`
	ProductType    string         `gorm:"type:varchar(50)" json:"product_type"`
	Dose           *int           `json:"dose,omitempty"`
	DoseUnit       *string        `gorm:"type:varchar(50)" json:"dose_unit,omitempty"`
	DoseType       *string        `gorm:"type:varchar(50)" json:"dose_type,omitempty"`
	Frequency      *int           `json:"frequency,omitempty"`
	FrequencyUnit  *string        `gorm:"type:varchar(50)" json:"frequency_unit,omitempty"`
	Duration       *int           `json:"duration,omitempty"`
	DurationUnit   *string        `gorm:"type:varchar(50)" json:"duration_unit,omitempty"`
	MedicalHistory *string        `gorm:"type:text" json:"medical_history,omitempty"`
	Affections     *string        `gorm:"type:text" json:"affections,omitempty"`
	ExpireAt       *time.Time     `json:"expire_at,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relationships
	Medic        Medic         `gorm:"foreignKey:MedicID" json:"medic,omitempty"`
	Patient      Patient       `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Dispensation *Dispensation `gorm:"foreignKey:PrescriptionID" json:"dispensation,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// IsAvailable checks if the prescription has not been dispensed yet
func (p *Prescription) IsAvailable() bool {
	return p.Status == PrescriptionStatusAvailable
}

// IsDispensed checks if the prescription has been fulfilled by a pharmacy
func (p *Prescription) IsDispensed() bool {
	return p.Status == PrescriptionStatusDispensed
}
