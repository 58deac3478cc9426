package repository

import (
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicalProviderRepository interface {
	Create(db *gorm.DB, provider *entity.MedicalProvider) error
	FindByID(db *gorm.DB, id string) (*entity.MedicalProvider, error)
	FindByEmail(db *gorm.DB, email string) (*entity.MedicalProvider, error)
	FindAll(db *gorm.DB) ([]entity.MedicalProvider, error)
	Update(db *gorm.DB, provider *entity.MedicalProvider) error
	Delete(db *gorm.DB, id string) (int64, error)
}
