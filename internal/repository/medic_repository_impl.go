package repository

import (
	"errors"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	domainRepo "github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"

	"gorm.io/gorm"
)

type medicRepository struct{}

func NewMedicRepository() domainRepo.MedicRepository {
	return &medicRepository{}
}

func (r *medicRepository) Create(db *gorm.DB, medic *entity.Medic) error {
	return db.Create(medic).Error
}

func (r *medicRepository) FindByID(db *gorm.DB, id string) (*entity.Medic, error) {
	var medic entity.Medic
	err := db.Preload("MedicalProvider").Where("id = ?", id).First(&medic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medic, nil
}

func (r *medicRepository) FindByEmail(db *gorm.DB, email string) (*entity.Medic, error) {
	var medic entity.Medic
	err := db.Where("email = ?", email).First(&medic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medic, nil
}

func (r *medicRepository) FindAll(db *gorm.DB) ([]entity.Medic, error) {
	var medics []entity.Medic
	err := db.Preload("MedicalProvider").Find(&medics).Error
	if err != nil {
		return nil, err
	}
	return medics, nil
}

func (r *medicRepository) Update(db *gorm.DB, medic *entity.Medic) error {
	return db.Omit("MedicalProvider").Save(medic).Error
}

func (r *medicRepository) Delete(db *gorm.DB, id string) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Medic{})
	return affected.RowsAffected, affected.Error
}

func (r *medicRepository) FindAllPaginated(db *gorm.DB, searchKeyword string, page, size int) ([]entity.Medic, int64, error) {
	query := db.Model(&entity.Medic{})
	if searchKeyword != "" {
		pattern := "%" + searchKeyword + "%"
		query = query.Where(
			"name LIKE ? OR lastname LIKE ? OR email LIKE ? OR cjp LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if size <= 0 {
		size = 10
	}

	var medics []entity.Medic
	err := query.Preload("MedicalProvider").
		Limit(size).Offset(page * size).
		Find(&medics).Error
	if err != nil {
		return nil, 0, err
	}
	return medics, total, nil
}

func (r *medicRepository) FindByMedicalProviderID(db *gorm.DB, medicalProviderID string) ([]entity.Medic, error) {
	var medics []entity.Medic
	err := db.Where("medical_provider_id = ?", medicalProviderID).Find(&medics).Error
	if err != nil {
		return nil, err
	}
	return medics, nil
}

func (r *medicRepository) SearchByProvider(db *gorm.DB, medicalProviderID, searchCriteria string, limit int) ([]entity.Medic, error) {
	pattern := "%" + searchCriteria + "%"
	var medics []entity.Medic
	err := db.Where("medical_provider_id = ?", medicalProviderID).
		Where("name LIKE ? OR lastname LIKE ? OR email LIKE ?", pattern, pattern, pattern).
		Limit(limit).
		Find(&medics).Error
	if err != nil {
		return nil, err
	}
	return medics, nil
}
