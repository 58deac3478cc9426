package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/service"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/usecase"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/response"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	dateParamLayout = "2006-01-02"

	// excelExportPageSize bounds a spreadsheet download to one large page.
	excelExportPageSize = 10000
)

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	currentProvider     *service.CurrentProviderService
	exportService       *service.ExportService
	validator           *validator.CustomValidator
	log                 *logrus.Logger
}

func NewPrescriptionHandler(
	prescriptionUsecase usecase.PrescriptionUsecase,
	currentProvider *service.CurrentProviderService,
	exportService *service.ExportService,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		currentProvider:     currentProvider,
		exportService:       exportService,
		validator:           validator,
		log:                 log,
	}
}

func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.CreatePrescription(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create prescription")
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	prescription, err := h.prescriptionUsecase.GetPrescription(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPrescriptionNotFound) {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.InternalServerError(w, "Failed to get prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *PrescriptionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.GetAllPrescriptions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *PrescriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.UpdatePrescription(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPrescriptionNotFound) {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.InternalServerError(w, "Failed to update prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", prescription)
}

func (h *PrescriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.prescriptionUsecase.DeletePrescription(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPrescriptionNotFound) {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.InternalServerError(w, "Failed to delete prescription")
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}

// GetByFilters serves the main prescription listing. Every query filter is
// optional and all supplied filters are ANDed. The medicalProviderId query
// param is accepted for backward compatibility but the scope always comes
// from the bearer token.
func (h *PrescriptionHandler) GetByFilters(w http.ResponseWriter, r *http.Request) {
	provider, err := h.currentProvider.CurrentProvider(r.Context())
	if err != nil {
		h.respondProviderError(w, err)
		return
	}

	filter, err := parsePrescriptionFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	prescriptions, total, err := h.prescriptionUsecase.ListByFilters(r.Context(), provider.ID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Prescriptions retrieved successfully",
		prescriptions, response.NewMeta(filter.Page, filter.Size, total))
}

// ByMedicalProviderPaginated lists the provider's prescriptions filtered by
// an optional status set.
func (h *PrescriptionHandler) ByMedicalProviderPaginated(w http.ResponseWriter, r *http.Request) {
	h.GetByFilters(w, r)
}

// ByMedicAndProviderPaginated narrows the provider listing to one medic via
// the medicId query param.
func (h *PrescriptionHandler) ByMedicAndProviderPaginated(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("medicId") == "" {
		response.Error(w, http.StatusBadRequest, "medicId is required", nil)
		return
	}
	h.GetByFilters(w, r)
}

// ByPatientAndProviderPaginated narrows the provider listing to one patient
// via the patientId query param.
func (h *PrescriptionHandler) ByPatientAndProviderPaginated(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("patientId") == "" {
		response.Error(w, http.StatusBadRequest, "patientId is required", nil)
		return
	}
	h.GetByFilters(w, r)
}

// ByProviderAndDateRange lists the provider's prescriptions inside a
// created-at window.
func (h *PrescriptionHandler) ByProviderAndDateRange(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("startDate") == "" || r.URL.Query().Get("endDate") == "" {
		response.Error(w, http.StatusBadRequest, "startDate and endDate are required", nil)
		return
	}
	h.GetByFilters(w, r)
}

func (h *PrescriptionHandler) ByMedicAndDateRange(w http.ResponseWriter, r *http.Request) {
	medicID := r.URL.Query().Get("medicId")
	if medicID == "" {
		response.Error(w, http.StatusBadRequest, "medicId is required", nil)
		return
	}

	filter, err := parsePrescriptionFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	prescriptions, err := h.prescriptionUsecase.ListByMedicAndDateRange(r.Context(), medicID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *PrescriptionHandler) ActiveByProvider(w http.ResponseWriter, r *http.Request) {
	provider, err := h.currentProvider.CurrentProvider(r.Context())
	if err != nil {
		h.respondProviderError(w, err)
		return
	}

	prescriptions, err := h.prescriptionUsecase.ListActiveByProvider(r.Context(), provider.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to list active prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}

func (h *PrescriptionHandler) CountByProvider(w http.ResponseWriter, r *http.Request) {
	provider, err := h.currentProvider.CurrentProvider(r.Context())
	if err != nil {
		h.respondProviderError(w, err)
		return
	}

	total, err := h.prescriptionUsecase.CountByProvider(r.Context(), provider.ID, parseStatuses(r))
	if err != nil {
		response.InternalServerError(w, "Failed to count prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescription count retrieved successfully", map[string]int64{"count": total})
}

// DownloadExcel streams the provider's filtered prescriptions as a
// spreadsheet. It reuses the listing filters with one fixed large page,
// newest first.
func (h *PrescriptionHandler) DownloadExcel(w http.ResponseWriter, r *http.Request) {
	provider, err := h.currentProvider.CurrentProvider(r.Context())
	if err != nil {
		h.respondProviderError(w, err)
		return
	}

	filter, err := parsePrescriptionFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	filter.Page = 0
	filter.Size = excelExportPageSize

	prescriptions, _, err := h.prescriptionUsecase.ListByFilters(r.Context(), provider.ID, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	workbook, err := h.exportService.BuildWorkbook(prescriptions)
	if err != nil {
		h.log.Warnf("Failed to build prescriptions workbook: %+v", err)
		response.InternalServerError(w, "Failed to build spreadsheet")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", service.ContentDisposition("prescriptions.xlsx"))
	if err := workbook.Write(w); err != nil {
		h.log.Warnf("Failed to write prescriptions workbook: %+v", err)
	}
}

func (h *PrescriptionHandler) respondProviderError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrProviderNotResolved) {
		response.NotFound(w, "Medical provider not found")
		return
	}
	response.InternalServerError(w, "Failed to resolve medical provider")
}

// parsePrescriptionFilter reads the shared listing query params. Dates use
// YYYY-MM-DD; startDate expands to local midnight and endDate to the last
// instant of that day, so a single-day range covers the whole day.
func parsePrescriptionFilter(r *http.Request) (*entity.PrescriptionFilter, error) {
	query := r.URL.Query()

	filter := &entity.PrescriptionFilter{
		MedicID:   query.Get("medicId"),
		PatientID: query.Get("patientId"),
		Statuses:  parseStatuses(r),
		Page:      0,
		Size:      10,
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return nil, errors.New("page must be a non-negative integer")
		}
		filter.Page = page
	}
	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return nil, errors.New("size must be a positive integer")
		}
		filter.Size = size
	}

	if raw := query.Get("startDate"); raw != "" {
		date, err := time.ParseInLocation(dateParamLayout, raw, time.Local)
		if err != nil {
			return nil, errors.New("startDate must be formatted as YYYY-MM-DD")
		}
		filter.StartDate = &date
	}
	if raw := query.Get("endDate"); raw != "" {
		date, err := time.ParseInLocation(dateParamLayout, raw, time.Local)
		if err != nil {
			return nil, errors.New("endDate must be formatted as YYYY-MM-DD")
		}
		endOfDay := date.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &endOfDay
	}

	return filter, nil
}

// parseStatuses accepts both repeated statuses params and a single
// comma-separated value.
func parseStatuses(r *http.Request) []string {
	var statuses []string
	for _, raw := range r.URL.Query()["statuses"] {
		for _, status := range strings.Split(raw, ",") {
			status = strings.TrimSpace(status)
			if status != "" {
				statuses = append(statuses, status)
			}
		}
	}
	return statuses
}
