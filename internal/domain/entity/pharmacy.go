package entity

import (
	"time"

	"gorm.io/gorm"
)

// Pharmacy is the dispensing party referenced by a dispensation.
type Pharmacy struct {
	ID           string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`
	BusinessName string         `gorm:"type:varchar(255)" json:"business_name"`
	RUT          string         `gorm:"type:varchar(50)" json:"rut"`
	Email        string         `gorm:"type:varchar(255)" json:"email"`
	Phone        string         `gorm:"type:varchar(50)" json:"phone"`
	Status       string         `gorm:"type:varchar(50)" json:"status"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Pharmacy) TableName() string {
	return "pharmacies"
}
