package usecase

import (
	"context"
	"errors"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/converter"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id string) error
	GetAllPatients(ctx context.Context) ([]*dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	password := req.Password
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash patient password: %+v", err)
			return nil, err
		}
		password = string(hashed)
	}

	patient := &entity.Patient{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Lastname:          req.Lastname,
		Email:             req.Email,
		Phone:             req.Phone,
		Document:          req.Document,
		User:              req.User,
		Password:          password,
		Birthdate:         req.Birthdate,
		Sex:               req.Sex,
		AddressCountryID:  req.AddressCountryID,
		AddressLocalityID: req.AddressLocalityID,
		AddressStreet:     req.AddressStreet,
		AddressNumber:     req.AddressNumber,
		AddressComments:   req.AddressComments,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id string, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.Name != nil {
		patient.Name = *req.Name
	}
	if req.Lastname != nil {
		patient.Lastname = *req.Lastname
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Document != nil {
		patient.Document = req.Document
	}
	if req.User != nil {
		patient.User = *req.User
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash patient password: %+v", err)
			return nil, err
		}
		patient.Password = string(hashed)
	}
	if req.Birthdate != nil {
		patient.Birthdate = *req.Birthdate
	}
	if req.Sex != nil {
		patient.Sex = *req.Sex
	}
	if req.AddressCountryID != nil {
		patient.AddressCountryID = *req.AddressCountryID
	}
	if req.AddressLocalityID != nil {
		patient.AddressLocalityID = *req.AddressLocalityID
	}
	if req.AddressStreet != nil {
		patient.AddressStreet = *req.AddressStreet
	}
	if req.AddressNumber != nil {
		patient.AddressNumber = *req.AddressNumber
	}
	if req.AddressComments != nil {
		patient.AddressComments = *req.AddressComments
	}

	if err := u.patientRepo.Update(db, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id string) error {
	affected, err := u.patientRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) ([]*dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}
