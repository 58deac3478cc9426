package entity

import (
	"time"

	"gorm.io/gorm"
)

// Medic is a prescribing practitioner. Every medic belongs to exactly one
// medical provider, which is the tenant boundary for all prescription
// queries.
type Medic struct {
	ID                string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(100);not null" json:"name"`
	Lastname          string         `gorm:"type:varchar(100)" json:"lastname"`
	Gender            string         `gorm:"type:varchar(20)" json:"gender"`
	Email             string         `gorm:"type:varchar(255);index" json:"email"`
	Password          string         `gorm:"type:varchar(255)" json:"-"`
	Phone             string         `gorm:"type:varchar(50)" json:"phone"`
	Birthdate         string         `gorm:"type:varchar(20)" json:"birthdate"`
	Document          string         `gorm:"type:text" json:"document"`
	CJP               string         `gorm:"type:varchar(50);index" json:"cjp"`
	Status            string         `gorm:"type:varchar(50)" json:"status"`
	EspecialityID     string         `gorm:"type:varchar(36)" json:"especiality_id"`
	MedicalProviderID string         `gorm:"type:varchar(36);not null;index" json:"medical_provider_id"`
	AddressCountryID  string         `gorm:"type:varchar(36)" json:"address_country_id"`
	AddressLocalityID string         `gorm:"type:varchar(36)" json:"address_locality_id"`
	AddressStreet     string         `gorm:"type:varchar(255)" json:"address_street"`
	AddressNumber     string         `gorm:"type:varchar(50)" json:"address_number"`
	AddressComments   string         `gorm:"type:text" json:"address_comments"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relationships
	MedicalProvider MedicalProvider `gorm:"foreignKey:MedicalProviderID" json:"medical_provider,omitempty"`
}

func (Medic) TableName() string {
	return "medics"
}
