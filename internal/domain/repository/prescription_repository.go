package repository

import (
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id string) (*entity.Prescription, error)
	FindAll(db *gorm.DB) ([]entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, id string) (int64, error)

	// FindByFilters returns one page of prescriptions visible to the
	// provider in filter.MedicalProviderID, newest first, along with the
	// total count under the same predicates.
	FindByFilters(db *gorm.DB, filter *entity.PrescriptionFilter) ([]entity.Prescription, int64, error)

	// FindActiveByProvider returns all AVAILABLE prescriptions for a
	// provider, newest first.
	FindActiveByProvider(db *gorm.DB, medicalProviderID string) ([]entity.Prescription, error)

	CountByProvider(db *gorm.DB, medicalProviderID string, statuses []string) (int64, error)

	// FindByMedicAndDateRange returns prescriptions for a single medic in
	// the given created_at range, unpaginated, newest first.
	FindByMedicAndDateRange(db *gorm.DB, medicID string, filter *entity.PrescriptionFilter) ([]entity.Prescription, error)
}
