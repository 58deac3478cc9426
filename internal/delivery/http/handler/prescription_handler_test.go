package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DoctorConsultas/recetalia-api-rest/config"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/http/middleware"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/repository"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/service"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/usecase"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/jwt"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/response"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubAmpFetcher struct{}

func (stubAmpFetcher) FetchAmpDetails(ctx context.Context, productIDs []string) map[string]entity.AmpLookup {
	results := make(map[string]entity.AmpLookup, len(productIDs))
	for _, id := range productIDs {
		results[id] = entity.AmpLookup{Status: entity.AmpNotFound}
	}
	return results
}

type handlerFixture struct {
	db         *gorm.DB
	router     *mux.Router
	jwtService *jwt.JWTService
	providerA  *entity.MedicalProvider
	providerB  *entity.MedicalProvider
	medicA     *entity.Medic
	medicB     *entity.Medic
	patient    *entity.Patient
}

func setupHandlerFixture(t *testing.T) *handlerFixture {
	dsn := fmt.Sprintf("file:testdb_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&entity.MedicalProvider{},
		&entity.Medic{},
		&entity.Patient{},
		&entity.Pharmacy{},
		&entity.Prescription{},
		&entity.Dispensation{},
	))

	providerA := &entity.MedicalProvider{ID: uuid.New().String(), Name: "Clinica A", Email: "a@recetalia.test"}
	providerB := &entity.MedicalProvider{ID: uuid.New().String(), Name: "Clinica B", Email: "b@recetalia.test"}
	assert.NoError(t, db.Create(providerA).Error)
	assert.NoError(t, db.Create(providerB).Error)

	medicA := &entity.Medic{ID: uuid.New().String(), Name: "Marta", Email: "marta@medic.test", MedicalProviderID: providerA.ID}
	medicB := &entity.Medic{ID: uuid.New().String(), Name: "Bruno", Email: "bruno@medic.test", MedicalProviderID: providerB.ID}
	assert.NoError(t, db.Create(medicA).Error)
	assert.NoError(t, db.Create(medicB).Error)

	patient := &entity.Patient{ID: uuid.New().String(), Name: "Pedro", Lastname: "Lopez"}
	assert.NoError(t, db.Create(patient).Error)

	log := logrus.New()
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	providerRepo := repository.NewMedicalProviderRepository()
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, repository.NewPrescriptionRepository(), stubAmpFetcher{})
	currentProvider := service.NewCurrentProviderService(db, providerRepo)
	exportService := service.NewExportService(log)

	h := NewPrescriptionHandler(prescriptionUsecase, currentProvider, exportService, validator.NewValidator(), log)

	// Revocation checks are skipped with a nil redis client
	authMiddleware := middleware.NewAuthMiddleware(jwtService, nil)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)
	api.HandleFunc("/prescriptions/get-prescriptions-by-filters", h.GetByFilters).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/download/excel", h.DownloadExcel).Methods(http.MethodGet)

	return &handlerFixture{
		db:         db,
		router:     router,
		jwtService: jwtService,
		providerA:  providerA,
		providerB:  providerB,
		medicA:     medicA,
		medicB:     medicB,
		patient:    patient,
	}
}

func (f *handlerFixture) seedPrescription(t *testing.T, medicID string, createdAt time.Time) *entity.Prescription {
	prescription := &entity.Prescription{
		ID:        uuid.New().String(),
		Status:    entity.PrescriptionStatusAvailable,
		MedicID:   medicID,
		PatientID: f.patient.ID,
		ProductID: "amp-1",
		CreatedAt: createdAt,
	}
	assert.NoError(t, f.db.Create(prescription).Error)
	return prescription
}

func (f *handlerFixture) get(t *testing.T, email, target string) *httptest.ResponseRecorder {
	token, _, err := f.jwtService.GenerateAccessToken(email, "MEDICAL_PROVIDER")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeListResponse(t *testing.T, rec *httptest.ResponseRecorder) (items []map[string]interface{}, meta *response.Meta) {
	var envelope struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
		Meta    *response.Meta           `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	return envelope.Data, envelope.Meta
}

func TestPrescriptionHandler_GetByFilters_TokenDecidesScope(t *testing.T) {
	f := setupHandlerFixture(t)

	now := time.Now()
	mine := f.seedPrescription(t, f.medicA.ID, now)
	f.seedPrescription(t, f.medicB.ID, now)

	rec := f.get(t, f.providerA.Email, "/api/prescriptions/get-prescriptions-by-filters")
	assert.Equal(t, http.StatusOK, rec.Code)
	items, meta := decodeListResponse(t, rec)
	assert.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0]["id"])
	assert.Equal(t, int64(1), meta.Total)

	// A client-supplied provider ID must not widen the scope
	spoofed := f.get(t, f.providerA.Email,
		"/api/prescriptions/get-prescriptions-by-filters?medicalProviderId="+f.providerB.ID)
	assert.Equal(t, http.StatusOK, spoofed.Code)
	spoofedItems, _ := decodeListResponse(t, spoofed)
	assert.Equal(t, items, spoofedItems)
}

func TestPrescriptionHandler_GetByFilters_RequiresToken(t *testing.T) {
	f := setupHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/prescriptions/get-prescriptions-by-filters", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPrescriptionHandler_GetByFilters_UnknownProviderEmail(t *testing.T) {
	f := setupHandlerFixture(t)

	rec := f.get(t, "ghost@recetalia.test", "/api/prescriptions/get-prescriptions-by-filters")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPrescriptionHandler_GetByFilters_DateWindow(t *testing.T) {
	f := setupHandlerFixture(t)

	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.Local)
	inRange := f.seedPrescription(t, f.medicA.ID, day.Add(23*time.Hour))
	f.seedPrescription(t, f.medicA.ID, day.AddDate(0, 0, 1).Add(time.Hour))
	f.seedPrescription(t, f.medicA.ID, day.Add(-time.Hour))

	rec := f.get(t, f.providerA.Email,
		"/api/prescriptions/get-prescriptions-by-filters?startDate=2026-04-02&endDate=2026-04-02")
	assert.Equal(t, http.StatusOK, rec.Code)
	items, _ := decodeListResponse(t, rec)
	assert.Len(t, items, 1)
	assert.Equal(t, inRange.ID, items[0]["id"])
}

func TestPrescriptionHandler_GetByFilters_BadDate(t *testing.T) {
	f := setupHandlerFixture(t)

	rec := f.get(t, f.providerA.Email,
		"/api/prescriptions/get-prescriptions-by-filters?startDate=02-04-2026")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPrescriptionHandler_DownloadExcel_Headers(t *testing.T) {
	f := setupHandlerFixture(t)
	f.seedPrescription(t, f.medicA.ID, time.Now())

	rec := f.get(t, f.providerA.Email, "/api/prescriptions/download/excel")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=prescriptions.xlsx", rec.Header().Get("Content-Disposition"))
	assert.NotZero(t, rec.Body.Len())
}

func TestParsePrescriptionFilter_Statuses(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/prescriptions?statuses=AVAILABLE,DISPENSED&statuses=EXPIRED", nil)

	filter, err := parsePrescriptionFilter(req)
	assert.NoError(t, err)
	assert.Equal(t, []string{"AVAILABLE", "DISPENSED", "EXPIRED"}, filter.Statuses)
}

func TestParsePrescriptionFilter_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/prescriptions", nil)

	filter, err := parsePrescriptionFilter(req)
	assert.NoError(t, err)
	assert.Equal(t, 0, filter.Page)
	assert.Equal(t, 10, filter.Size)
	assert.Nil(t, filter.StartDate)
	assert.Nil(t, filter.EndDate)
	assert.Empty(t, filter.Statuses)
}

func TestParsePrescriptionFilter_EndDateCoversWholeDay(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/prescriptions?endDate=2026-04-02", nil)

	filter, err := parsePrescriptionFilter(req)
	assert.NoError(t, err)
	assert.NotNil(t, filter.EndDate)

	nextMidnight := time.Date(2026, 4, 3, 0, 0, 0, 0, time.Local)
	assert.Equal(t, nextMidnight.Add(-time.Nanosecond), *filter.EndDate)
}

func TestParsePrescriptionFilter_InvalidPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/prescriptions?page=-1", nil)
	_, err := parsePrescriptionFilter(req)
	assert.Error(t, err)

	req = httptest.NewRequest(http.MethodGet, "/prescriptions?size=zero", nil)
	_, err = parsePrescriptionFilter(req)
	assert.Error(t, err)
}
