package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/usecase"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/response"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type MedicalProviderHandler struct {
	providerUsecase usecase.MedicalProviderUsecase
	validator       *validator.CustomValidator
	log             *logrus.Logger
}

func NewMedicalProviderHandler(
	providerUsecase usecase.MedicalProviderUsecase,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *MedicalProviderHandler {
	return &MedicalProviderHandler{
		providerUsecase: providerUsecase,
		validator:       validator,
		log:             log,
	}
}

func (h *MedicalProviderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicalProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	provider, err := h.providerUsecase.CreateMedicalProvider(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrMedicalProviderEmailExists) {
			response.Conflict(w, "Email already registered")
			return
		}
		response.InternalServerError(w, "Failed to create medical provider")
		return
	}

	response.Success(w, http.StatusCreated, "Medical provider created successfully", provider)
}

func (h *MedicalProviderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	provider, err := h.providerUsecase.GetMedicalProvider(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrMedicalProviderNotFound) {
			response.NotFound(w, "Medical provider not found")
			return
		}
		response.InternalServerError(w, "Failed to get medical provider")
		return
	}

	response.Success(w, http.StatusOK, "Medical provider retrieved successfully", provider)
}

func (h *MedicalProviderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	providers, err := h.providerUsecase.GetAllMedicalProviders(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list medical providers")
		return
	}

	response.Success(w, http.StatusOK, "Medical providers retrieved successfully", providers)
}

func (h *MedicalProviderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateMedicalProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	provider, err := h.providerUsecase.UpdateMedicalProvider(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMedicalProviderNotFound):
			response.NotFound(w, "Medical provider not found")
		case errors.Is(err, usecase.ErrMedicalProviderEmailExists):
			response.Conflict(w, "Email already registered")
		default:
			response.InternalServerError(w, "Failed to update medical provider")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical provider updated successfully", provider)
}

func (h *MedicalProviderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.providerUsecase.DeleteMedicalProvider(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrMedicalProviderNotFound) {
			response.NotFound(w, "Medical provider not found")
			return
		}
		response.InternalServerError(w, "Failed to delete medical provider")
		return
	}

	response.Success(w, http.StatusOK, "Medical provider deleted successfully", nil)
}

// Login authenticates a medical provider and returns a bearer token whose
// email claim scopes all subsequent prescription queries.
func (h *MedicalProviderHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.providerUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, "Invalid email or password")
			return
		}
		response.InternalServerError(w, "Failed to login")
		return
	}

	response.Success(w, http.StatusOK, "Login successful", result)
}
