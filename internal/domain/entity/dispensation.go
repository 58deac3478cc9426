package entity

import (
	"time"

	"gorm.io/gorm"
)

// Dispensation is the fulfillment record created when a pharmacy fills a
// prescription. At most one per prescription; listings only surface the
// dispensing pharmacy's name from it.
type Dispensation struct {
	ID                   string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	PrescriptionID       string         `gorm:"type:varchar(36);not null;index" json:"prescription_id"`
	PharmacyID           string         `gorm:"type:varchar(36);not null;index" json:"pharmacy_id"`
	Qty                  *int           `json:"qty,omitempty"`
	Status               string         `gorm:"type:varchar(50)" json:"status"`
	Substitute           string         `gorm:"type:varchar(255)" json:"substitute"`
	LoteNumber           string         `gorm:"type:varchar(100)" json:"lote_number"`
	LoteExpireAt         *time.Time     `json:"lote_expire_at,omitempty"`
	DispensedToName      string         `gorm:"type:varchar(100)" json:"dispensed_to_name"`
	DispensedToLastname  string         `gorm:"type:varchar(100)" json:"dispensed_to_lastname"`
	DispensedToDocument  string         `gorm:"type:text" json:"dispensed_to_document"`
	DispensedToCity      string         `gorm:"type:varchar(100)" json:"dispensed_to_city"`
	DispensedToStreet    string         `gorm:"type:varchar(255)" json:"dispensed_to_street"`
	DispensedToCountryID string         `gorm:"type:varchar(36)" json:"dispensed_to_country_id"`
	ProductID            string         `gorm:"type:varchar(36)" json:"product_id"`
	ProductType          string         `gorm:"type:varchar(50)" json:"product_type"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Relationships
	Pharmacy Pharmacy `gorm:"foreignKey:PharmacyID" json:"pharmacy,omitempty"`
}

func (Dispensation) TableName() string {
	return "dispensations"
}
