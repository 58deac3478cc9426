package usecase

import (
	"context"
	"errors"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCountryNotFound              = errors.New("country not found")
	ErrLocalityNotFound             = errors.New("locality not found")
	ErrNotificationTemplateNotFound = errors.New("notification template not found")
)

// ReferenceUsecase manages the address and notification reference data.
// Notification templates are stored only; delivery happens outside this
// service.
type ReferenceUsecase interface {
	CreateCountry(ctx context.Context, req *dto.CountryRequest) (*entity.Country, error)
	UpdateCountry(ctx context.Context, id string, req *dto.CountryRequest) (*entity.Country, error)
	GetCountry(ctx context.Context, id string) (*entity.Country, error)
	DeleteCountry(ctx context.Context, id string) error
	GetAllCountries(ctx context.Context) ([]entity.Country, error)

	CreateLocality(ctx context.Context, req *dto.LocalityRequest) (*entity.Locality, error)
	UpdateLocality(ctx context.Context, id string, req *dto.LocalityRequest) (*entity.Locality, error)
	GetLocality(ctx context.Context, id string) (*entity.Locality, error)
	DeleteLocality(ctx context.Context, id string) error
	GetAllLocalities(ctx context.Context) ([]entity.Locality, error)
	GetLocalitiesByCountry(ctx context.Context, countryID string) ([]entity.Locality, error)

	CreateNotificationTemplate(ctx context.Context, req *dto.NotificationTemplateRequest) (*entity.NotificationTemplate, error)
	UpdateNotificationTemplate(ctx context.Context, id string, req *dto.NotificationTemplateRequest) (*entity.NotificationTemplate, error)
	GetNotificationTemplate(ctx context.Context, id string) (*entity.NotificationTemplate, error)
	DeleteNotificationTemplate(ctx context.Context, id string) error
	GetAllNotificationTemplates(ctx context.Context) ([]entity.NotificationTemplate, error)
}

type referenceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	countryRepo  repository.CountryRepository
	localityRepo repository.LocalityRepository
	templateRepo repository.NotificationTemplateRepository
}

func NewReferenceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	countryRepo repository.CountryRepository,
	localityRepo repository.LocalityRepository,
	templateRepo repository.NotificationTemplateRepository,
) ReferenceUsecase {
	return &referenceUsecase{
		db:           db,
		log:          log,
		countryRepo:  countryRepo,
		localityRepo: localityRepo,
		templateRepo: templateRepo,
	}
}

func (u *referenceUsecase) CreateCountry(ctx context.Context, req *dto.CountryRequest) (*entity.Country, error) {
	country := &entity.Country{
		ID:   uuid.New().String(),
		Name: req.Name,
		Code: req.Code,
	}
	if err := u.countryRepo.Create(u.db.WithContext(ctx), country); err != nil {
		u.log.Warnf("Failed to create country: %+v", err)
		return nil, err
	}
	return country, nil
}

func (u *referenceUsecase) UpdateCountry(ctx context.Context, id string, req *dto.CountryRequest) (*entity.Country, error) {
	db := u.db.WithContext(ctx)

	country, err := u.countryRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find country %s: %+v", id, err)
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}

	country.Name = req.Name
	country.Code = req.Code

	if err := u.countryRepo.Update(db, country); err != nil {
		u.log.Warnf("Failed to update country %s: %+v", id, err)
		return nil, err
	}
	return country, nil
}

func (u *referenceUsecase) GetCountry(ctx context.Context, id string) (*entity.Country, error) {
	country, err := u.countryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find country %s: %+v", id, err)
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}
	return country, nil
}

func (u *referenceUsecase) DeleteCountry(ctx context.Context, id string) error {
	affected, err := u.countryRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete country %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrCountryNotFound
	}
	return nil
}

func (u *referenceUsecase) GetAllCountries(ctx context.Context) ([]entity.Country, error) {
	countries, err := u.countryRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list countries: %+v", err)
		return nil, err
	}
	return countries, nil
}

func (u *referenceUsecase) CreateLocality(ctx context.Context, req *dto.LocalityRequest) (*entity.Locality, error) {
	locality := &entity.Locality{
		ID:        uuid.New().String(),
		CountryID: req.CountryID,
		Name:      req.Name,
	}
	if err := u.localityRepo.Create(u.db.WithContext(ctx), locality); err != nil {
		u.log.Warnf("Failed to create locality: %+v", err)
		return nil, err
	}
	return locality, nil
}

func (u *referenceUsecase) UpdateLocality(ctx context.Context, id string, req *dto.LocalityRequest) (*entity.Locality, error) {
	db := u.db.WithContext(ctx)

	locality, err := u.localityRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find locality %s: %+v", id, err)
		return nil, err
	}
	if locality == nil {
		return nil, ErrLocalityNotFound
	}

	locality.CountryID = req.CountryID
	locality.Name = req.Name

	if err := u.localityRepo.Update(db, locality); err != nil {
		u.log.Warnf("Failed to update locality %s: %+v", id, err)
		return nil, err
	}
	return locality, nil
}

func (u *referenceUsecase) GetLocality(ctx context.Context, id string) (*entity.Locality, error) {
	locality, err := u.localityRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find locality %s: %+v", id, err)
		return nil, err
	}
	if locality == nil {
		return nil, ErrLocalityNotFound
	}
	return locality, nil
}

func (u *referenceUsecase) DeleteLocality(ctx context.Context, id string) error {
	affected, err := u.localityRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete locality %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrLocalityNotFound
	}
	return nil
}

func (u *referenceUsecase) GetAllLocalities(ctx context.Context) ([]entity.Locality, error) {
	localities, err := u.localityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list localities: %+v", err)
		return nil, err
	}
	return localities, nil
}

func (u *referenceUsecase) GetLocalitiesByCountry(ctx context.Context, countryID string) ([]entity.Locality, error) {
	localities, err := u.localityRepo.FindByCountryID(u.db.WithContext(ctx), countryID)
	if err != nil {
		u.log.Warnf("Failed to list localities for country %s: %+v", countryID, err)
		return nil, err
	}
	return localities, nil
}

func (u *referenceUsecase) CreateNotificationTemplate(ctx context.Context, req *dto.NotificationTemplateRequest) (*entity.NotificationTemplate, error) {
	template := &entity.NotificationTemplate{
		ID:      uuid.New().String(),
		Name:    req.Name,
		Channel: req.Channel,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := u.templateRepo.Create(u.db.WithContext(ctx), template); err != nil {
		u.log.Warnf("Failed to create notification template: %+v", err)
		return nil, err
	}
	return template, nil
}

func (u *referenceUsecase) UpdateNotificationTemplate(ctx context.Context, id string, req *dto.NotificationTemplateRequest) (*entity.NotificationTemplate, error) {
	db := u.db.WithContext(ctx)

	template, err := u.templateRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find notification template %s: %+v", id, err)
		return nil, err
	}
	if template == nil {
		return nil, ErrNotificationTemplateNotFound
	}

	template.Name = req.Name
	template.Channel = req.Channel
	template.Subject = req.Subject
	template.Body = req.Body

	if err := u.templateRepo.Update(db, template); err != nil {
		u.log.Warnf("Failed to update notification template %s: %+v", id, err)
		return nil, err
	}
	return template, nil
}

func (u *referenceUsecase) GetNotificationTemplate(ctx context.Context, id string) (*entity.NotificationTemplate, error) {
	template, err := u.templateRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find notification template %s: %+v", id, err)
		return nil, err
	}
	if template == nil {
		return nil, ErrNotificationTemplateNotFound
	}
	return template, nil
}

func (u *referenceUsecase) DeleteNotificationTemplate(ctx context.Context, id string) error {
	affected, err := u.templateRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete notification template %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrNotificationTemplateNotFound
	}
	return nil
}

func (u *referenceUsecase) GetAllNotificationTemplates(ctx context.Context) ([]entity.NotificationTemplate, error) {
	templates, err := u.templateRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list notification templates: %+v", err)
		return nil, err
	}
	return templates, nil
}
