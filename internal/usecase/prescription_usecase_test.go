package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeAmpFetcher serves canned catalog lookups so usecase tests run without
// a DNMA connection.
type fakeAmpFetcher struct {
	lookups map[string]entity.AmpLookup
	failAll bool
}

func (f *fakeAmpFetcher) FetchAmpDetails(ctx context.Context, productIDs []string) map[string]entity.AmpLookup {
	results := make(map[string]entity.AmpLookup, len(productIDs))
	for _, id := range productIDs {
		if f.failAll {
			results[id] = entity.AmpLookup{Status: entity.AmpLookupFailed}
			continue
		}
		if lookup, ok := f.lookups[id]; ok {
			results[id] = lookup
		} else {
			results[id] = entity.AmpLookup{Status: entity.AmpNotFound}
		}
	}
	return results
}

func setupUsecaseTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:testdb_usecase_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&entity.MedicalProvider{},
		&entity.Medic{},
		&entity.Patient{},
		&entity.Pharmacy{},
		&entity.Prescription{},
		&entity.Dispensation{},
	)
	assert.NoError(t, err)

	return db
}

type usecaseFixture struct {
	provider *entity.MedicalProvider
	medic    *entity.Medic
	patient  *entity.Patient
}

func seedUsecaseFixture(t *testing.T, db *gorm.DB) usecaseFixture {
	provider := &entity.MedicalProvider{ID: uuid.New().String(), Name: "Clinica Test", Email: "clinica@recetalia.test"}
	assert.NoError(t, db.Create(provider).Error)
	medic := &entity.Medic{ID: uuid.New().String(), Name: "Marta", Lastname: "Rios", Email: "marta@medic.test", MedicalProviderID: provider.ID}
	assert.NoError(t, db.Create(medic).Error)
	patient := &entity.Patient{ID: uuid.New().String(), Name: "Pedro", Lastname: "Lopez"}
	assert.NoError(t, db.Create(patient).Error)
	return usecaseFixture{provider: provider, medic: medic, patient: patient}
}

func seedUsecasePrescription(t *testing.T, db *gorm.DB, f usecaseFixture, productID string) *entity.Prescription {
	prescription := &entity.Prescription{
		ID:        uuid.New().String(),
		Status:    entity.PrescriptionStatusAvailable,
		MedicID:   f.medic.ID,
		PatientID: f.patient.ID,
		ProductID: productID,
	}
	assert.NoError(t, db.Create(prescription).Error)
	return prescription
}

func newPrescriptionUsecaseForTest(db *gorm.DB, fetcher *fakeAmpFetcher) PrescriptionUsecase {
	log := logrus.New()
	return NewPrescriptionUsecase(db, log, repository.NewPrescriptionRepository(), fetcher)
}

func TestPrescriptionUsecase_ListByFilters_MergesEnrichment(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)

	seedUsecasePrescription(t, db, f, "amp-1")
	seedUsecasePrescription(t, db, f, "amp-2")
	seedUsecasePrescription(t, db, f, "amp-unknown")

	fetcher := &fakeAmpFetcher{lookups: map[string]entity.AmpLookup{
		"amp-1": {Status: entity.AmpFound, Details: entity.AmpDetails{
			Description: "Paracetamol 500mg", ProdMSP: "MSP-1",
			LaboratoryName: "Lab Uno", LaboratoryRUT: "210000000011",
		}},
		"amp-2": {Status: entity.AmpFound, Details: entity.AmpDetails{
			Description: "Ibuprofeno 400mg", ProdMSP: "MSP-2",
			LaboratoryName: "Lab Dos", LaboratoryRUT: "210000000022",
		}},
	}}
	u := newPrescriptionUsecaseForTest(db, fetcher)

	results, total, err := u.ListByFilters(context.Background(), f.provider.ID, &entity.PrescriptionFilter{Size: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, results, 3)

	byProduct := make(map[string]*dto.PrescriptionResponse, len(results))
	for _, r := range results {
		byProduct[r.ProductID] = r
	}
	assert.Equal(t, "Paracetamol 500mg", byProduct["amp-1"].AmpDsc)
	assert.Equal(t, "Lab Dos", byProduct["amp-2"].NombreLaboratory)
	assert.Empty(t, byProduct["amp-unknown"].AmpDsc)
	assert.Empty(t, byProduct["amp-unknown"].RutLaboratory)

	// Display fields ride along from the preloaded relations
	assert.Equal(t, "Marta", byProduct["amp-1"].MedicName)
	assert.Equal(t, "Pedro", byProduct["amp-1"].PatientName)
}

func TestPrescriptionUsecase_ListByFilters_SucceedsWhenLookupFails(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)
	seedUsecasePrescription(t, db, f, "amp-1")

	u := newPrescriptionUsecaseForTest(db, &fakeAmpFetcher{failAll: true})

	results, total, err := u.ListByFilters(context.Background(), f.provider.ID, &entity.PrescriptionFilter{Size: 10})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, results[0].AmpDsc)
	assert.Empty(t, results[0].NombreLaboratory)
}

func TestPrescriptionUsecase_ListByFilters_ProviderArgumentWins(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)
	seedUsecasePrescription(t, db, f, "amp-1")

	other := &entity.MedicalProvider{ID: uuid.New().String(), Name: "Otro", Email: "otro@recetalia.test"}
	assert.NoError(t, db.Create(other).Error)

	u := newPrescriptionUsecaseForTest(db, &fakeAmpFetcher{})

	// A filter pre-populated with another provider must not widen the scope
	filter := &entity.PrescriptionFilter{MedicalProviderID: f.provider.ID, Size: 10}
	results, total, err := u.ListByFilters(context.Background(), other.ID, filter)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, results)
	assert.Equal(t, other.ID, filter.MedicalProviderID)
}

func TestPrescriptionUsecase_UpdatePrescription_PartialMerge(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)

	dose := 2
	doseUnit := "comprimidos"
	prescription := &entity.Prescription{
		ID:        uuid.New().String(),
		Code:      "RX-001",
		Status:    entity.PrescriptionStatusAvailable,
		MedicID:   f.medic.ID,
		PatientID: f.patient.ID,
		ProductID: "amp-1",
		Dose:      &dose,
		DoseUnit:  &doseUnit,
	}
	assert.NoError(t, db.Create(prescription).Error)

	u := newPrescriptionUsecaseForTest(db, &fakeAmpFetcher{})

	newStatus := entity.PrescriptionStatusDispensed
	updated, err := u.UpdatePrescription(context.Background(), prescription.ID, &dto.UpdatePrescriptionRequest{
		Status: &newStatus,
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.PrescriptionStatusDispensed, updated.Status)

	// Untouched fields survive the merge
	assert.Equal(t, "RX-001", updated.Code)
	assert.NotNil(t, updated.Dose)
	assert.Equal(t, 2, *updated.Dose)
	assert.Equal(t, "comprimidos", *updated.DoseUnit)
}

func TestPrescriptionUsecase_NotFoundPaths(t *testing.T) {
	db := setupUsecaseTestDB(t)
	u := newPrescriptionUsecaseForTest(db, &fakeAmpFetcher{})

	_, err := u.GetPrescription(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPrescriptionNotFound)

	status := entity.PrescriptionStatusDispensed
	_, err = u.UpdatePrescription(context.Background(), "missing", &dto.UpdatePrescriptionRequest{Status: &status})
	assert.ErrorIs(t, err, ErrPrescriptionNotFound)

	err = u.DeletePrescription(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPrescriptionNotFound)
}

func TestPrescriptionUsecase_CreatePrescription(t *testing.T) {
	db := setupUsecaseTestDB(t)
	f := seedUsecaseFixture(t, db)
	u := newPrescriptionUsecaseForTest(db, &fakeAmpFetcher{})

	created, err := u.CreatePrescription(context.Background(), &dto.CreatePrescriptionRequest{
		Code:      "RX-777",
		Status:    entity.PrescriptionStatusAvailable,
		MedicID:   f.medic.ID,
		PatientID: f.patient.ID,
		ProductID: "amp-9",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "RX-777", created.Code)

	var stored entity.Prescription
	assert.NoError(t, db.Where("id = ?", created.ID).First(&stored).Error)
	assert.Equal(t, "amp-9", stored.ProductID)
}
