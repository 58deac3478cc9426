package repository

import (
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"gorm.io/gorm"
)

type MedicRepository interface {
	Create(db *gorm.DB, medic *entity.Medic) error
	FindByID(db *gorm.DB, id string) (*entity.Medic, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Medic, error)
	FindAll(db *gorm.DB) ([]entity.Medic, error)
	Update(db *gorm.DB, medic *entity.Medic) error
	Delete(db *gorm.DB, id string) (int64, error)

	// FindAllPaginated matches searchKeyword against name, lastname,
	// email and cjp; an empty keyword returns all medics.
	FindAllPaginated(db *gorm.DB, searchKeyword string, page, size int) ([]entity.Medic, int64, error)

	FindByMedicalProviderID(db *gorm.DB, medicalProviderID string) ([]entity.Medic, error)

	// SearchByProvider matches searchCriteria against name, lastname and
	// email within a single provider, capped at limit rows.
	SearchByProvider(db *gorm.DB, medicalProviderID, searchCriteria string, limit int) ([]entity.Medic, error)
}
