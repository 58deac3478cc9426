package service

import (
	"context"
	"errors"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/http/middleware"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"

	"gorm.io/gorm"
)

var ErrProviderNotResolved = errors.New("no medical provider matches the authenticated identity")

// CurrentProviderService resolves the caller's bearer identity to a
// MedicalProvider row. Handlers call it once per request and pass the
// resolved provider ID into usecases explicitly; any medicalProviderId
// supplied by the client is deliberately overridden by this value, so
// request parameters can never widen the tenant scope.
type CurrentProviderService struct {
	db           *gorm.DB
	providerRepo repository.MedicalProviderRepository
}

func NewCurrentProviderService(db *gorm.DB, providerRepo repository.MedicalProviderRepository) *CurrentProviderService {
	return &CurrentProviderService{
		db:           db,
		providerRepo: providerRepo,
	}
}

// CurrentProvider reads the email claim placed in ctx by the auth
// middleware and looks up the matching provider. A missing claim or an
// unknown email both resolve to ErrProviderNotResolved.
func (s *CurrentProviderService) CurrentProvider(ctx context.Context) (*entity.MedicalProvider, error) {
	email, ok := middleware.GetEmailFromContext(ctx)
	if !ok || email == "" {
		return nil, ErrProviderNotResolved
	}

	provider, err := s.providerRepo.FindByEmail(s.db.WithContext(ctx), email)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotResolved
	}
	return provider, nil
}
