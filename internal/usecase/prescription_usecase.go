package usecase

import (
	"context"
	"errors"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/converter"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/repository"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	UpdatePrescription(ctx context.Context, id string, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, id string) (*dto.PrescriptionResponse, error)
	DeletePrescription(ctx context.Context, id string) error
	GetAllPrescriptions(ctx context.Context) ([]*dto.PrescriptionResponse, error)

	// ListByFilters returns one enriched page scoped to the given
	// provider, which callers must obtain from the authenticated
	// identity, never from request input.
	ListByFilters(ctx context.Context, medicalProviderID string, filter *entity.PrescriptionFilter) ([]*dto.PrescriptionResponse, int64, error)

	ListActiveByProvider(ctx context.Context, medicalProviderID string) ([]*dto.PrescriptionResponse, error)
	CountByProvider(ctx context.Context, medicalProviderID string, statuses []string) (int64, error)
	ListByMedicAndDateRange(ctx context.Context, medicID string, filter *entity.PrescriptionFilter) ([]*dto.PrescriptionResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	ampFetcher       service.AmpFetcher
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	ampFetcher service.AmpFetcher,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		ampFetcher:       ampFetcher,
	}
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription := &entity.Prescription{
		ID:             uuid.New().String(),
		Code:           req.Code,
		Status:         req.Status,
		MedicID:        req.MedicID,
		PatientID:      req.PatientID,
		ProductID:      req.ProductID,
		ProductType:    req.ProductType,
		Dose:           req.Dose,
		DoseUnit:       req.DoseUnit,
		DoseType:       req.DoseType,
		Frequency:      req.Frequency,
		FrequencyUnit:  req.FrequencyUnit,
		Duration:       req.Duration,
		DurationUnit:   req.DurationUnit,
		MedicalHistory: req.MedicalHistory,
		Affections:     req.Affections,
		ExpireAt:       req.ExpireAt,
	}

	if err := u.prescriptionRepo.Create(u.db.WithContext(ctx), prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) UpdatePrescription(ctx context.Context, id string, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	db := u.db.WithContext(ctx)

	prescription, err := u.prescriptionRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	// Partial merge: nil request fields leave stored values untouched
	if req.Code != nil {
		prescription.Code = *req.Code
	}
	if req.Status != nil {
		prescription.Status = *req.Status
	}
	if req.MedicID != nil {
		prescription.MedicID = *req.MedicID
	}
	if req.PatientID != nil {
		prescription.PatientID = *req.PatientID
	}
	if req.ProductID != nil {
		prescription.ProductID = *req.ProductID
	}
	if req.ProductType != nil {
		prescription.ProductType = *req.ProductType
	}
	if req.Dose != nil {
		prescription.Dose = req.Dose
	}
	if req.DoseUnit != nil {
		prescription.DoseUnit = req.DoseUnit
	}
	if req.DoseType != nil {
		prescription.DoseType = req.DoseType
	}
	if req.Frequency != nil {
		prescription.Frequency = req.Frequency
	}
	if req.FrequencyUnit != nil {
		prescription.FrequencyUnit = req.FrequencyUnit
	}
	if req.Duration != nil {
		prescription.Duration = req.Duration
	}
	if req.DurationUnit != nil {
		prescription.DurationUnit = req.DurationUnit
	}
	if req.MedicalHistory != nil {
		prescription.MedicalHistory = req.MedicalHistory
	}
	if req.Affections != nil {
		prescription.Affections = req.Affections
	}
	if req.ExpireAt != nil {
		prescription.ExpireAt = req.ExpireAt
	}

	if err := u.prescriptionRepo.Update(db, prescription); err != nil {
		u.log.Warnf("Failed to update prescription %s: %+v", id, err)
		return nil, err
	}

	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, id string) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	responses := u.enrich(ctx, []entity.Prescription{*prescription})
	return responses[0], nil
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, id string) error {
	affected, err := u.prescriptionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPrescriptionNotFound
	}
	return nil
}

func (u *prescriptionUsecase) GetAllPrescriptions(ctx context.Context) ([]*dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	return u.enrich(ctx, prescriptions), nil
}

func (u *prescriptionUsecase) ListByFilters(ctx context.Context, medicalProviderID string, filter *entity.PrescriptionFilter) ([]*dto.PrescriptionResponse, int64, error) {
	// The provider scope always comes from the authenticated identity;
	// whatever was in the filter before is discarded.
	filter.MedicalProviderID = medicalProviderID

	prescriptions, total, err := u.prescriptionRepo.FindByFilters(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions by filters: %+v", err)
		return nil, 0, err
	}
	return u.enrich(ctx, prescriptions), total, nil
}

func (u *prescriptionUsecase) ListActiveByProvider(ctx context.Context, medicalProviderID string) ([]*dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindActiveByProvider(u.db.WithContext(ctx), medicalProviderID)
	if err != nil {
		u.log.Warnf("Failed to list active prescriptions: %+v", err)
		return nil, err
	}
	return u.enrich(ctx, prescriptions), nil
}

func (u *prescriptionUsecase) CountByProvider(ctx context.Context, medicalProviderID string, statuses []string) (int64, error) {
	total, err := u.prescriptionRepo.CountByProvider(u.db.WithContext(ctx), medicalProviderID, statuses)
	if err != nil {
		u.log.Warnf("Failed to count prescriptions: %+v", err)
		return 0, err
	}
	return total, nil
}

func (u *prescriptionUsecase) ListByMedicAndDateRange(ctx context.Context, medicID string, filter *entity.PrescriptionFilter) ([]*dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByMedicAndDateRange(u.db.WithContext(ctx), medicID, filter)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions by medic and date range: %+v", err)
		return nil, err
	}
	return u.enrich(ctx, prescriptions), nil
}

// enrich converts prescriptions to response DTOs and decorates them with
// DNMA catalog metadata: one batched lookup for the distinct product IDs of
// the whole set. Missing or failed lookups leave the enrichment fields
// empty; they never fail the listing.
func (u *prescriptionUsecase) enrich(ctx context.Context, prescriptions []entity.Prescription) []*dto.PrescriptionResponse {
	productIDs := make([]string, 0, len(prescriptions))
	for i := range prescriptions {
		productIDs = append(productIDs, prescriptions[i].ProductID)
	}
	lookups := u.ampFetcher.FetchAmpDetails(ctx, productIDs)

	responses := make([]*dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		resp := converter.PrescriptionToResponse(&prescriptions[i])
		if lookup, ok := lookups[prescriptions[i].ProductID]; ok {
			if lookup.Status == entity.AmpLookupFailed {
				u.log.Warnf("DNMA enrichment unavailable for prescription %s (product %s)", prescriptions[i].ID, prescriptions[i].ProductID)
			}
			converter.ApplyAmpLookup(resp, lookup)
		}
		responses = append(responses, resp)
	}
	return responses
}
