package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/converter"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMedicalProviderNotFound    = errors.New("medical provider not found")
	ErrMedicalProviderEmailExists = errors.New("medical provider email already registered")
	ErrInvalidCredentials         = errors.New("invalid email or password")
)

// RoleMedicalProvider is the authority claim issued at login.
const RoleMedicalProvider = "MEDICAL_PROVIDER"

type MedicalProviderUsecase interface {
	CreateMedicalProvider(ctx context.Context, req *dto.CreateMedicalProviderRequest) (*dto.MedicalProviderResponse, error)
	UpdateMedicalProvider(ctx context.Context, id string, req *dto.UpdateMedicalProviderRequest) (*dto.MedicalProviderResponse, error)
	GetMedicalProvider(ctx context.Context, id string) (*dto.MedicalProviderResponse, error)
	DeleteMedicalProvider(ctx context.Context, id string) error
	GetAllMedicalProviders(ctx context.Context) ([]*dto.MedicalProviderResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type medicalProviderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	providerRepo repository.MedicalProviderRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
}

func NewMedicalProviderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	providerRepo repository.MedicalProviderRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) MedicalProviderUsecase {
	return &medicalProviderUsecase{
		db:           db,
		log:          log,
		providerRepo: providerRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
	}
}

func (u *medicalProviderUsecase) CreateMedicalProvider(ctx context.Context, req *dto.CreateMedicalProviderRequest) (*dto.MedicalProviderResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.providerRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check provider email %s: %+v", req.Email, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrMedicalProviderEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash provider password: %+v", err)
		return nil, err
	}

	provider := &entity.MedicalProvider{
		ID:                    uuid.New().String(),
		MedicalProviderTypeID: req.MedicalProviderTypeID,
		Name:                  req.Name,
		BusinessName:          req.BusinessName,
		RUT:                   req.RUT,
		Email:                 req.Email,
		Password:              string(hashed),
		Phone:                 req.Phone,
		Status:                req.Status,
		AddressCountryID:      req.AddressCountryID,
		AddressLocalityID:     req.AddressLocalityID,
		AddressStreet:         req.AddressStreet,
		AddressNumber:         req.AddressNumber,
		AddressComments:       req.AddressComments,
	}

	if err := u.providerRepo.Create(db, provider); err != nil {
		u.log.Warnf("Failed to create medical provider: %+v", err)
		return nil, err
	}

	return converter.MedicalProviderToResponse(provider), nil
}

func (u *medicalProviderUsecase) UpdateMedicalProvider(ctx context.Context, id string, req *dto.UpdateMedicalProviderRequest) (*dto.MedicalProviderResponse, error) {
	db := u.db.WithContext(ctx)

	provider, err := u.providerRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medical provider %s: %+v", id, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrMedicalProviderNotFound
	}

	if req.Email != nil && *req.Email != provider.Email {
		existing, err := u.providerRepo.FindByEmail(db, *req.Email)
		if err != nil {
			u.log.Warnf("Failed to check provider email %s: %+v", *req.Email, err)
			return nil, err
		}
		if existing != nil && existing.ID != provider.ID {
			return nil, ErrMedicalProviderEmailExists
		}
		provider.Email = *req.Email
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.BusinessName != nil {
		provider.BusinessName = *req.BusinessName
	}
	if req.RUT != nil {
		provider.RUT = *req.RUT
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash provider password: %+v", err)
			return nil, err
		}
		provider.Password = string(hashed)
	}
	if req.Phone != nil {
		provider.Phone = *req.Phone
	}
	if req.Status != nil {
		provider.Status = *req.Status
	}
	if req.MedicalProviderTypeID != nil {
		provider.MedicalProviderTypeID = *req.MedicalProviderTypeID
	}
	if req.AddressCountryID != nil {
		provider.AddressCountryID = *req.AddressCountryID
	}
	if req.AddressLocalityID != nil {
		provider.AddressLocalityID = *req.AddressLocalityID
	}
	if req.AddressStreet != nil {
		provider.AddressStreet = *req.AddressStreet
	}
	if req.AddressNumber != nil {
		provider.AddressNumber = *req.AddressNumber
	}
	if req.AddressComments != nil {
		provider.AddressComments = *req.AddressComments
	}

	if err := u.providerRepo.Update(db, provider); err != nil {
		u.log.Warnf("Failed to update medical provider %s: %+v", id, err)
		return nil, err
	}

	return converter.MedicalProviderToResponse(provider), nil
}

func (u *medicalProviderUsecase) GetMedicalProvider(ctx context.Context, id string) (*dto.MedicalProviderResponse, error) {
	provider, err := u.providerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medical provider %s: %+v", id, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrMedicalProviderNotFound
	}
	return converter.MedicalProviderToResponse(provider), nil
}

func (u *medicalProviderUsecase) DeleteMedicalProvider(ctx context.Context, id string) error {
	affected, err := u.providerRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete medical provider %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrMedicalProviderNotFound
	}
	return nil
}

func (u *medicalProviderUsecase) GetAllMedicalProviders(ctx context.Context) ([]*dto.MedicalProviderResponse, error) {
	providers, err := u.providerRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list medical providers: %+v", err)
		return nil, err
	}
	return converter.MedicalProvidersToResponses(providers), nil
}

// Login authenticates a medical provider and issues an access token. The
// token ID is stored in redis for the token lifetime so it can be revoked
// before expiry. Legacy rows hold plaintext passwords; those still compare
// byte for byte and are accepted.
func (u *medicalProviderUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	provider, err := u.providerRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find medical provider by email %s: %+v", req.Email, err)
		return nil, err
	}
	if provider == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.Password), []byte(req.Password)); err != nil {
		if provider.Password != req.Password {
			return nil, ErrInvalidCredentials
		}
	}

	token, tokenID, err := u.jwtService.GenerateAccessToken(provider.Email, RoleMedicalProvider)
	if err != nil {
		u.log.Warnf("Failed to generate access token for %s: %+v", provider.Email, err)
		return nil, err
	}

	if u.redisClient != nil {
		tokenKey := fmt.Sprintf("access_token:%s:%s", provider.Email, tokenID)
		if err := u.redisClient.Set(ctx, tokenKey, provider.ID, u.jwtService.GetAccessExpiry()).Err(); err != nil {
			u.log.Warnf("Failed to store access token for %s: %+v", provider.Email, err)
			return nil, err
		}
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		Provider:    converter.MedicalProviderToResponse(provider),
	}, nil
}
