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

var (
	ErrMedicNotFound    = errors.New("medic not found")
	ErrMedicEmailExists = errors.New("medic email already registered")
)

// medicSearchLimit caps the quick-search endpoint result set.
const medicSearchLimit = 10

type MedicUsecase interface {
	CreateMedic(ctx context.Context, req *dto.CreateMedicRequest) (*dto.MedicResponse, error)
	UpdateMedic(ctx context.Context, id string, req *dto.UpdateMedicRequest) (*dto.MedicResponse, error)
	GetMedic(ctx context.Context, id string) (*dto.MedicResponse, error)
	DeleteMedic(ctx context.Context, id string) error
	GetAllMedics(ctx context.Context) ([]*dto.MedicResponse, error)

	ListPaginated(ctx context.Context, searchKeyword string, page, size int) ([]*dto.MedicResponse, int64, error)
	ListByMedicalProvider(ctx context.Context, medicalProviderID string) ([]*dto.MedicResponse, error)
	SearchByProvider(ctx context.Context, medicalProviderID, searchCriteria string) ([]*dto.MedicResponse, error)
}

type medicUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	medicRepo repository.MedicRepository
}

func NewMedicUsecase(db *gorm.DB, log *logrus.Logger, medicRepo repository.MedicRepository) MedicUsecase {
	return &medicUsecase{
		db:        db,
		log:       log,
		medicRepo: medicRepo,
	}
}

func (u *medicUsecase) CreateMedic(ctx context.Context, req *dto.CreateMedicRequest) (*dto.MedicResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.medicRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check medic email %s: %+v", req.Email, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrMedicEmailExists
	}

	password := req.Password
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash medic password: %+v", err)
			return nil, err
		}
		password = string(hashed)
	}

	medic := &entity.Medic{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Lastname:          req.Lastname,
		Gender:            req.Gender,
		Email:             req.Email,
		Password:          password,
		Phone:             req.Phone,
		Birthdate:         req.Birthdate,
		Document:          req.Document,
		CJP:               req.CJP,
		Status:            req.Status,
		EspecialityID:     req.EspecialityID,
		MedicalProviderID: req.MedicalProviderID,
		AddressCountryID:  req.AddressCountryID,
		AddressLocalityID: req.AddressLocalityID,
		AddressStreet:     req.AddressStreet,
		AddressNumber:     req.AddressNumber,
		AddressComments:   req.AddressComments,
	}

	if err := u.medicRepo.Create(db, medic); err != nil {
		u.log.Warnf("Failed to create medic: %+v", err)
		return nil, err
	}

	return converter.MedicToResponse(medic), nil
}

func (u *medicUsecase) UpdateMedic(ctx context.Context, id string, req *dto.UpdateMedicRequest) (*dto.MedicResponse, error) {
	db := u.db.WithContext(ctx)

	medic, err := u.medicRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medic %s: %+v", id, err)
		return nil, err
	}
	if medic == nil {
		return nil, ErrMedicNotFound
	}

	// An email change must not collide with another medic's email.
	if req.Email != nil && *req.Email != medic.Email {
		existing, err := u.medicRepo.FindByEmail(db, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to check medic email %s: %+v", *req.Email, err)
			return nil, err
		}
		if existing != nil && existing.ID != medic.ID {
			return nil, ErrMedicEmailExists
		}
		medic.Email = *req.Email
	}

	if req.Name != nil {
		medic.Name = *req.Name
	}
	if req.Lastname != nil {
		medic.Lastname = *req.Lastname
	}
	if req.Gender != nil {
		medic.Gender = *req.Gender
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash medic password: %+v", err)
			return nil, err
		}
		medic.Password = string(hashed)
	}
	if req.Phone != nil {
		medic.Phone = *req.Phone
	}
	if req.Birthdate != nil {
		medic.Birthdate = *req.Birthdate
	}
	if req.Document != nil {
		medic.Document = *req.Document
	}
	if req.CJP != nil {
		medic.CJP = *req.CJP
	}
	if req.Status != nil {
		medic.Status = *req.Status
	}
	if req.EspecialityID != nil {
		medic.EspecialityID = *req.EspecialityID
	}
	if req.MedicalProviderID != nil {
		medic.MedicalProviderID = *req.MedicalProviderID
	}
	if req.AddressCountryID != nil {
		medic.AddressCountryID = *req.AddressCountryID
	}
	if req.AddressLocalityID != nil {
		medic.AddressLocalityID = *req.AddressLocalityID
	}
	if req.AddressStreet != nil {
		medic.AddressStreet = *req.AddressStreet
	}
	if req.AddressNumber != nil {
		medic.AddressNumber = *req.AddressNumber
	}
	if req.AddressComments != nil {
		medic.AddressComments = *req.AddressComments
	}

	if err := u.medicRepo.Update(db, medic); err != nil {
		u.log.Warnf("Failed to update medic %s: %+v", id, err)
		return nil, err
	}

	return converter.MedicToResponse(medic), nil
}

func (u *medicUsecase) GetMedic(ctx context.Context, id string) (*dto.MedicResponse, error) {
	medic, err := u.medicRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medic %s: %+v", id, err)
		return nil, err
	}
	if medic == nil {
		return nil, ErrMedicNotFound
	}
	return converter.MedicToResponse(medic), nil
}

func (u *medicUsecase) DeleteMedic(ctx context.Context, id string) error {
	affected, err := u.medicRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete medic %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrMedicNotFound
	}
	return nil
}

func (u *medicUsecase) GetAllMedics(ctx context.Context) ([]*dto.MedicResponse, error) {
	medics, err := u.medicRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medics: %+v", err)
		return nil, err
	}
	return converter.MedicsToResponses(medics), nil
}

func (u *medicUsecase) ListPaginated(ctx context.Context, searchKeyword string, page, size int) ([]*dto.MedicResponse, int64, error) {
	medics, total, err := u.medicRepo.FindAllPaginated(u.db.WithContext(ctx), searchKeyword, page, size)
	if err != nil {
		u.log.Warnf("Failed to list medics paginated: %+v", err)
		return nil, 0, err
	}
	return converter.MedicsToResponses(medics), total, nil
}

func (u *medicUsecase) ListByMedicalProvider(ctx context.Context, medicalProviderID string) ([]*dto.MedicResponse, error) {
	medics, err := u.medicRepo.FindByMedicalProviderID(u.db.WithContext(ctx), medicalProviderID)
	if err != nil {
		u.log.Warnf("Failed to list medics for provider %s: %+v", medicalProviderID, err)
		return nil, err
	}
	return converter.MedicsToResponses(medics), nil
}

func (u *medicUsecase) SearchByProvider(ctx context.Context, medicalProviderID, searchCriteria string) ([]*dto.MedicResponse, error) {
	medics, err := u.medicRepo.SearchByProvider(u.db.WithContext(ctx), medicalProviderID, searchCriteria, medicSearchLimit)
	if err != nil {
		u.log.Warnf("Failed to search medics for provider %s: %+v", medicalProviderID, err)
		return nil, err
	}
	return converter.MedicsToResponses(medics), nil
}
