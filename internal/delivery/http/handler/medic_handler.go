package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/service"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/usecase"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/response"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type MedicHandler struct {
	medicUsecase    usecase.MedicUsecase
	currentProvider *service.CurrentProviderService
	validator       *validator.CustomValidator
	log             *logrus.Logger
}

func NewMedicHandler(
	medicUsecase usecase.MedicUsecase,
	currentProvider *service.CurrentProviderService,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *MedicHandler {
	return &MedicHandler{
		medicUsecase:    medicUsecase,
		currentProvider: currentProvider,
		validator:       validator,
		log:             log,
	}
}

func (h *MedicHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medic, err := h.medicUsecase.CreateMedic(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrMedicEmailExists) {
			response.Conflict(w, "Email already registered")
			return
		}
		response.InternalServerError(w, "Failed to create medic")
		return
	}

	response.Success(w, http.StatusCreated, "Medic created successfully", medic)
}

func (h *MedicHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	medic, err := h.medicUsecase.GetMedic(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrMedicNotFound) {
			response.NotFound(w, "Medic not found")
			return
		}
		response.InternalServerError(w, "Failed to get medic")
		return
	}

	response.Success(w, http.StatusOK, "Medic retrieved successfully", medic)
}

func (h *MedicHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	medics, err := h.medicUsecase.GetAllMedics(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medics")
		return
	}

	response.Success(w, http.StatusOK, "Medics retrieved successfully", medics)
}

func (h *MedicHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateMedicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medic, err := h.medicUsecase.UpdateMedic(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMedicNotFound):
			response.NotFound(w, "Medic not found")
		case errors.Is(err, usecase.ErrMedicEmailExists):
			response.Conflict(w, "Email already registered")
		default:
			response.InternalServerError(w, "Failed to update medic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medic updated successfully", medic)
}

func (h *MedicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.medicUsecase.DeleteMedic(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrMedicNotFound) {
			response.NotFound(w, "Medic not found")
			return
		}
		response.InternalServerError(w, "Failed to delete medic")
		return
	}

	response.Success(w, http.StatusOK, "Medic deleted successfully", nil)
}

// GetPaginated lists medics with an optional searchKeyword matched against
// name, lastname, email and cjp.
func (h *MedicHandler) GetPaginated(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 0
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(w, http.StatusBadRequest, "page must be a non-negative integer", nil)
			return
		}
		page = parsed
	}

	size := 10
	if raw := query.Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(w, http.StatusBadRequest, "size must be a positive integer", nil)
			return
		}
		size = parsed
	}

	medics, total, err := h.medicUsecase.ListPaginated(r.Context(), query.Get("searchKeyword"), page, size)
	if err != nil {
		response.InternalServerError(w, "Failed to list medics")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medics retrieved successfully",
		medics, response.NewMeta(page, size, total))
}

// GetByMedicalProvider lists the authenticated provider's medics. The path
// still carries a provider ID for backward compatibility; it is ignored in
// favor of the token scope.
func (h *MedicHandler) GetByMedicalProvider(w http.ResponseWriter, r *http.Request) {
	provider, err := h.currentProvider.CurrentProvider(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrProviderNotResolved) {
			response.NotFound(w, "Medical provider not found")
			return
		}
		response.InternalServerError(w, "Failed to resolve medical provider")
		return
	}

	medics, err := h.medicUsecase.ListByMedicalProvider(r.Context(), provider.ID)
	if err != nil {
		response.InternalServerError(w, "Failed to list medics")
		return
	}

	response.Success(w, http.StatusOK, "Medics retrieved successfully", medics)
}

// Search performs a quick lookup within the authenticated provider's
// medics, capped at a small result set.
func (h *MedicHandler) Search(w http.ResponseWriter, r *http.Request) {
	provider, err := h.currentProvider.CurrentProvider(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrProviderNotResolved) {
			response.NotFound(w, "Medical provider not found")
			return
		}
		response.InternalServerError(w, "Failed to resolve medical provider")
		return
	}

	medics, err := h.medicUsecase.SearchByProvider(r.Context(), provider.ID, r.URL.Query().Get("searchCriteria"))
	if err != nil {
		response.InternalServerError(w, "Failed to search medics")
		return
	}

	response.Success(w, http.StatusOK, "Medics retrieved successfully", medics)
}
