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

// ReferenceHandler serves the address reference data and notification
// template storage.
type ReferenceHandler struct {
	referenceUsecase usecase.ReferenceUsecase
	validator        *validator.CustomValidator
	log              *logrus.Logger
}

func NewReferenceHandler(
	referenceUsecase usecase.ReferenceUsecase,
	validator *validator.CustomValidator,
	log *logrus.Logger,
) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUsecase: referenceUsecase,
		validator:        validator,
		log:              log,
	}
}

func (h *ReferenceHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var req dto.CountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	country, err := h.referenceUsecase.CreateCountry(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create country")
		return
	}
	response.Success(w, http.StatusCreated, "Country created successfully", country)
}

func (h *ReferenceHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.referenceUsecase.GetCountry(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrCountryNotFound) {
			response.NotFound(w, "Country not found")
			return
		}
		response.InternalServerError(w, "Failed to get country")
		return
	}
	response.Success(w, http.StatusOK, "Country retrieved successfully", country)
}

func (h *ReferenceHandler) GetAllCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.referenceUsecase.GetAllCountries(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list countries")
		return
	}
	response.Success(w, http.StatusOK, "Countries retrieved successfully", countries)
}

func (h *ReferenceHandler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	var req dto.CountryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	country, err := h.referenceUsecase.UpdateCountry(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		if errors.Is(err, usecase.ErrCountryNotFound) {
			response.NotFound(w, "Country not found")
			return
		}
		response.InternalServerError(w, "Failed to update country")
		return
	}
	response.Success(w, http.StatusOK, "Country updated successfully", country)
}

func (h *ReferenceHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	if err := h.referenceUsecase.DeleteCountry(r.Context(), mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, usecase.ErrCountryNotFound) {
			response.NotFound(w, "Country not found")
			return
		}
		response.InternalServerError(w, "Failed to delete country")
		return
	}
	response.Success(w, http.StatusOK, "Country deleted successfully", nil)
}

func (h *ReferenceHandler) CreateLocality(w http.ResponseWriter, r *http.Request) {
	var req dto.LocalityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	locality, err := h.referenceUsecase.CreateLocality(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create locality")
		return
	}
	response.Success(w, http.StatusCreated, "Locality created successfully", locality)
}

func (h *ReferenceHandler) GetLocality(w http.ResponseWriter, r *http.Request) {
	locality, err := h.referenceUsecase.GetLocality(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrLocalityNotFound) {
			response.NotFound(w, "Locality not found")
			return
		}
		response.InternalServerError(w, "Failed to get locality")
		return
	}
	response.Success(w, http.StatusOK, "Locality retrieved successfully", locality)
}

// GetAllLocalities optionally narrows by the countryId query param.
func (h *ReferenceHandler) GetAllLocalities(w http.ResponseWriter, r *http.Request) {
	if countryID := r.URL.Query().Get("countryId"); countryID != "" {
		localities, err := h.referenceUsecase.GetLocalitiesByCountry(r.Context(), countryID)
		if err != nil {
			response.InternalServerError(w, "Failed to list localities")
			return
		}
		response.Success(w, http.StatusOK, "Localities retrieved successfully", localities)
		return
	}

	localities, err := h.referenceUsecase.GetAllLocalities(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list localities")
		return
	}
	response.Success(w, http.StatusOK, "Localities retrieved successfully", localities)
}

func (h *ReferenceHandler) UpdateLocality(w http.ResponseWriter, r *http.Request) {
	var req dto.LocalityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	locality, err := h.referenceUsecase.UpdateLocality(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		if errors.Is(err, usecase.ErrLocalityNotFound) {
			response.NotFound(w, "Locality not found")
			return
		}
		response.InternalServerError(w, "Failed to update locality")
		return
	}
	response.Success(w, http.StatusOK, "Locality updated successfully", locality)
}

func (h *ReferenceHandler) DeleteLocality(w http.ResponseWriter, r *http.Request) {
	if err := h.referenceUsecase.DeleteLocality(r.Context(), mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, usecase.ErrLocalityNotFound) {
			response.NotFound(w, "Locality not found")
			return
		}
		response.InternalServerError(w, "Failed to delete locality")
		return
	}
	response.Success(w, http.StatusOK, "Locality deleted successfully", nil)
}

func (h *ReferenceHandler) CreateNotificationTemplate(w http.ResponseWriter, r *http.Request) {
	var req dto.NotificationTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.referenceUsecase.CreateNotificationTemplate(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create notification template")
		return
	}
	response.Success(w, http.StatusCreated, "Notification template created successfully", template)
}

func (h *ReferenceHandler) GetNotificationTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.referenceUsecase.GetNotificationTemplate(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrNotificationTemplateNotFound) {
			response.NotFound(w, "Notification template not found")
			return
		}
		response.InternalServerError(w, "Failed to get notification template")
		return
	}
	response.Success(w, http.StatusOK, "Notification template retrieved successfully", template)
}

func (h *ReferenceHandler) GetAllNotificationTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.referenceUsecase.GetAllNotificationTemplates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list notification templates")
		return
	}
	response.Success(w, http.StatusOK, "Notification templates retrieved successfully", templates)
}

func (h *ReferenceHandler) UpdateNotificationTemplate(w http.ResponseWriter, r *http.Request) {
	var req dto.NotificationTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	template, err := h.referenceUsecase.UpdateNotificationTemplate(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		if errors.Is(err, usecase.ErrNotificationTemplateNotFound) {
			response.NotFound(w, "Notification template not found")
			return
		}
		response.InternalServerError(w, "Failed to update notification template")
		return
	}
	response.Success(w, http.StatusOK, "Notification template updated successfully", template)
}

func (h *ReferenceHandler) DeleteNotificationTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.referenceUsecase.DeleteNotificationTemplate(r.Context(), mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, usecase.ErrNotificationTemplateNotFound) {
			response.NotFound(w, "Notification template not found")
			return
		}
		response.InternalServerError(w, "Failed to delete notification template")
		return
	}
	response.Success(w, http.StatusOK, "Notification template deleted successfully", nil)
}
