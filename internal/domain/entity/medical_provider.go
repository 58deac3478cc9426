package entity

import (
	"time"

	"gorm.io/gorm"
)

// MedicalProvider is the tenant/organization boundary. Every medic and,
// transitively, every prescription belongs to exactly one provider. The
// authenticated caller's email claim resolves to a row in this table.
type MedicalProvider struct {
	ID                    string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	MedicalProviderTypeID string         `gorm:"type:varchar(36)" json:"medical_provider_type_id"`
	Name                  string         `gorm:"type:varchar(100);not null" json:"name"`
	BusinessName          string         `gorm:"type:varchar(255)" json:"business_name"`
	RUT                   string         `gorm:"type:varchar(50)" json:"rut"`
	Email                 string         `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Password              string         `gorm:"type:varchar(255)" json:"-"`
	Phone                 string         `gorm:"type:varchar(50)" json:"phone"`
	Status                string         `gorm:"type:varchar(50)" json:"status"`
	AddressCountryID      string         `gorm:"type:varchar(36)" json:"address_country_id"`
	AddressLocalityID     string         `gorm:"type:varchar(36)" json:"address_locality_id"`
	AddressStreet         string         `gorm:"type:varchar(255)" json:"address_street"`
	AddressNumber         string         `gorm:"type:varchar(50)" json:"address_number"`
	AddressComments       string         `gorm:"type:text" json:"address_comments"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relationships
	Medics []Medic `gorm:"foreignKey:MedicalProviderID" json:"medics,omitempty"`
}

func (MedicalProvider) TableName() string {
	return "medical_providers"
}
