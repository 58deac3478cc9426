package repository

import (
	"errors"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	domainRepo "github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id string) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("Medic").Preload("Patient").Preload("Dispensation.Pharmacy").
		Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindAll(db *gorm.DB) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Medic").Preload("Patient").Preload("Dispensation.Pharmacy").
		Order("created_at DESC").Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Omit("Medic", "Patient", "Dispensation").Save(prescription).Error
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id string) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Prescription{})
	return affected.RowsAffected, affected.Error
}

// filterScope applies the predicates shared by the page query and the count
// query. The provider scope joins through medics: a prescription belongs to
// the provider that owns its issuing medic.
func filterScope(db *gorm.DB, filter *entity.PrescriptionFilter) *gorm.DB {
	query := db.Model(&entity.Prescription{}).
		Joins("JOIN medics ON medics.id = prescriptions.medic_id").
		Where("medics.medical_provider_id = ?", filter.MedicalProviderID)

	if filter.MedicID != "" {
		query = query.Where("prescriptions.medic_id = ?", filter.MedicID)
	}
	if filter.PatientID != "" {
		query = query.Where("prescriptions.patient_id = ?", filter.PatientID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("prescriptions.status IN ?", filter.Statuses)
	}
	if filter.StartDate != nil {
		query = query.Where("prescriptions.created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("prescriptions.created_at <= ?", *filter.EndDate)
	}
	return query
}

func (r *prescriptionRepository) FindByFilters(db *gorm.DB, filter *entity.PrescriptionFilter) ([]entity.Prescription, int64, error) {
	var total int64
	if err := filterScope(db, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	size := filter.Size
	if size <= 0 {
		size = 10
	}

	var prescriptions []entity.Prescription
	err := filterScope(db, filter).
		Preload("Medic").Preload("Patient").Preload("Dispensation.Pharmacy").
		Order("prescriptions.created_at DESC").
		Limit(size).Offset(filter.Page * size).
		Find(&prescriptions).Error
	if err != nil {
		return nil, 0, err
	}
	return prescriptions, total, nil
}

func (r *prescriptionRepository) FindActiveByProvider(db *gorm.DB, medicalProviderID string) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Model(&entity.Prescription{}).
		Joins("JOIN medics ON medics.id = prescriptions.medic_id").
		Where("medics.medical_provider_id = ?", medicalProviderID).
		Where("prescriptions.status = ?", entity.PrescriptionStatusAvailable).
		Preload("Medic").Preload("Patient").Preload("Dispensation.Pharmacy").
		Order("prescriptions.created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) CountByProvider(db *gorm.DB, medicalProviderID string, statuses []string) (int64, error) {
	var total int64
	query := db.Model(&entity.Prescription{}).
		Joins("JOIN medics ON medics.id = prescriptions.medic_id").
		Where("medics.medical_provider_id = ?", medicalProviderID)
	if len(statuses) > 0 {
		query = query.Where("prescriptions.status IN ?", statuses)
	}
	err := query.Count(&total).Error
	return total, err
}

func (r *prescriptionRepository) FindByMedicAndDateRange(db *gorm.DB, medicID string, filter *entity.PrescriptionFilter) ([]entity.Prescription, error) {
	query := db.Model(&entity.Prescription{}).
		Where("prescriptions.medic_id = ?", medicID)
	if len(filter.Statuses) > 0 {
		query = query.Where("prescriptions.status IN ?", filter.Statuses)
	}
	if filter.StartDate != nil {
		query = query.Where("prescriptions.created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("prescriptions.created_at <= ?", *filter.EndDate)
	}

	var prescriptions []entity.Prescription
	err := query.
		Preload("Medic").Preload("Patient").Preload("Dispensation.Pharmacy").
		Order("prescriptions.created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}
