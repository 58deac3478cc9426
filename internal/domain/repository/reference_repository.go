package repository

import (
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"gorm.io/gorm"
)

type CountryRepository interface {
	Create(db *gorm.DB, country *entity.Country) error
	FindByID(db *gorm.DB, id string) (*entity.Country, error)
	FindAll(db *gorm.DB) ([]entity.Country, error)
	Update(db *gorm.DB, country *entity.Country) error
	Delete(db *gorm.DB, id string) (int64, error)
}

type LocalityRepository interface {
	Create(db *gorm.DB, locality *entity.Locality) error
	FindByID(db *gorm.DB, id string) (*entity.Locality, error)
	FindAll(db *gorm.DB) ([]entity.Locality, error)
	FindByCountryID(db *gorm.DB, countryID string) ([]entity.Locality, error)
	Update(db *gorm.DB, locality *entity.Locality) error
	Delete(db *gorm.DB, id string) (int64, error)
}

type NotificationTemplateRepository interface {
	Create(db *gorm.DB, template *entity.NotificationTemplate) error
	FindByID(db *gorm.DB, id string) (*entity.NotificationTemplate, error)
	FindAll(db *gorm.DB) ([]entity.NotificationTemplate, error)
	Update(db *gorm.DB, template *entity.NotificationTemplate) error
	Delete(db *gorm.DB, id string) (int64, error)
}
