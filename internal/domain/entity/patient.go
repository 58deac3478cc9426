package entity

import (
	"time"

	"gorm.io/gorm"
)

// Patient is the recipient of prescriptions. Document is stored as a
// JSON-encoded string (legacy schema); the Excel export extracts its
// "number" subfield for the CI column.
type Patient struct {
	ID                string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(100);not null" json:"name"`
	Lastname          string         `gorm:"type:varchar(100)" json:"lastname"`
	Email             string         `gorm:"type:varchar(255);index" json:"email"`
	Phone             string         `gorm:"type:varchar(50)" json:"phone"`
	Document          *string        `gorm:"type:text" json:"document,omitempty"`
	User              string         `gorm:"type:varchar(100)" json:"user"`
	Password          string         `gorm:"type:varchar(255)" json:"-"`
	Birthdate         string         `gorm:"type:varchar(20)" json:"birthdate"`
	Sex               string         `gorm:"type:varchar(20)" json:"sex"`
	AvatarID          string         `gorm:"type:varchar(36)" json:"avatar_id"`
	AddressCountryID  string         `gorm:"type:varchar(36)" json:"address_country_id"`
	AddressLocalityID string         `gorm:"type:varchar(36)" json:"address_locality_id"`
	AddressStreet     string         `gorm:"type:varchar(255)" json:"address_street"`
	AddressNumber     string         `gorm:"type:varchar(50)" json:"address_number"`
	AddressComments   string         `gorm:"type:text" json:"address_comments"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
