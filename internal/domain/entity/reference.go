package entity

import "time"

// Country is a reference record used by address fields.
type Country struct {
	ID   string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
	Code string `gorm:"type:varchar(10)" json:"code"`
}

func (Country) TableName() string {
	return "countries"
}

// Locality is a reference record scoped under a country.
type Locality struct {
	ID        string `gorm:"type:varchar(36);primaryKey" json:"id"`
	CountryID string `gorm:"type:varchar(36);not null;index" json:"country_id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`

	Country Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

func (Locality) TableName() string {
	return "localities"
}

// NotificationTemplate holds the text of patient/medic notifications.
// Delivery itself happens outside this service; only the template CRUD
// lives here.
type NotificationTemplate struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Channel   string    `gorm:"type:varchar(20);not null" json:"channel"`
	Subject   string    `gorm:"type:varchar(255)" json:"subject"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NotificationTemplate) TableName() string {
	return "notification_templates"
}
