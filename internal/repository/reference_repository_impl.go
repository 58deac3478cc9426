package repository

import (
	"errors"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	domainRepo "github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"

	"gorm.io/gorm"
)

type countryRepository struct{}

func NewCountryRepository() domainRepo.CountryRepository {
	return &countryRepository{}
}

func (r *countryRepository) Create(db *gorm.DB, country *entity.Country) error {
	return db.Create(country).Error
}

func (r *countryRepository) FindByID(db *gorm.DB, id string) (*entity.Country, error) {
	var country entity.Country
	err := db.Where("id = ?", id).First(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) FindAll(db *gorm.DB) ([]entity.Country, error) {
	var countries []entity.Country
	err := db.Order("name ASC").Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) Update(db *gorm.DB, country *entity.Country) error {
	return db.Save(country).Error
}

func (r *countryRepository) Delete(db *gorm.DB, id string) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Country{})
	return affected.RowsAffected, affected.Error
}

type localityRepository struct{}

func NewLocalityRepository() domainRepo.LocalityRepository {
	return &localityRepository{}
}

func (r *localityRepository) Create(db *gorm.DB, locality *entity.Locality) error {
	return db.Create(locality).Error
}

func (r *localityRepository) FindByID(db *gorm.DB, id string) (*entity.Locality, error) {
	var locality entity.Locality
	err := db.Where("id = ?", id).First(&locality).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &locality, nil
}

func (r *localityRepository) FindAll(db *gorm.DB) ([]entity.Locality, error) {
	var localities []entity.Locality
	err := db.Order("name ASC").Find(&localities).Error
	if err != nil {
		return nil, err
	}
	return localities, nil
}

func (r *localityRepository) FindByCountryID(db *gorm.DB, countryID string) ([]entity.Locality, error) {
	var localities []entity.Locality
	err := db.Where("country_id = ?", countryID).Order("name ASC").Find(&localities).Error
	if err != nil {
		return nil, err
	}
	return localities, nil
}

func (r *localityRepository) Update(db *gorm.DB, locality *entity.Locality) error {
	return db.Omit("Country").Save(locality).Error
}

func (r *localityRepository) Delete(db *gorm.DB, id string) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Locality{})
	return affected.RowsAffected, affected.Error
}

type notificationTemplateRepository struct{}

func NewNotificationTemplateRepository() domainRepo.NotificationTemplateRepository {
	return &notificationTemplateRepository{}
}

func (r *notificationTemplateRepository) Create(db *gorm.DB, template *entity.NotificationTemplate) error {
	return db.Create(template).Error
}

func (r *notificationTemplateRepository) FindByID(db *gorm.DB, id string) (*entity.NotificationTemplate, error) {
	var template entity.NotificationTemplate
	err := db.Where("id = ?", id).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &template, nil
}

func (r *notificationTemplateRepository) FindAll(db *gorm.DB) ([]entity.NotificationTemplate, error) {
	var templates []entity.NotificationTemplate
	err := db.Order("name ASC").Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *notificationTemplateRepository) Update(db *gorm.DB, template *entity.NotificationTemplate) error {
	return db.Save(template).Error
}

func (r *notificationTemplateRepository) Delete(db *gorm.DB, id string) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.NotificationTemplate{})
	return affected.RowsAffected, affected.Error
}
