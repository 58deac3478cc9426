package repository

import (
	"errors"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	domainRepo "github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"

	"gorm.io/gorm"
)

type medicalProviderRepository struct{}

func NewMedicalProviderRepository() domainRepo.MedicalProviderRepository {
	return &medicalProviderRepository{}
}

func (r *medicalProviderRepository) Create(db *gorm.DB, provider *entity.MedicalProvider) error {
	return db.Create(provider).Error
}

func (r *medicalProviderRepository) FindByID(db *gorm.DB, id string) (*entity.MedicalProvider, error) {
	var provider entity.MedicalProvider
	err := db.Where("id = ?", id).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *medicalProviderRepository) FindByEmail(db *gorm.DB, email string) (*entity.MedicalProvider, error) {
	var provider entity.MedicalProvider
	err := db.Where("email = ?", email).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

func (r *medicalProviderRepository) FindAll(db *gorm.DB) ([]entity.MedicalProvider, error) {
	var providers []entity.MedicalProvider
	err := db.Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *medicalProviderRepository) Update(db *gorm.DB, provider *entity.MedicalProvider) error {
	return db.Omit("Medics").Save(provider).Error
}

func (r *medicalProviderRepository) Delete(db *gorm.DB, id string) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.MedicalProvider{})
	return affected.RowsAffected, affected.Error
}
