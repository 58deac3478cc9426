package dto

import "time"

type CreateMedicalProviderRequest struct {
	Name                  string `json:"name" validate:"required"`
	BusinessName          string `json:"business_name"`
	RUT                   string `json:"rut"`
	Email                 string `json:"email" validate:"required,email"`
	Password              string `json:"password" validate:"required,min=8"`
	Phone                 string `json:"phone"`
	Status                string `json:"status"`
	MedicalProviderTypeID string `json:"medical_provider_type_id"`
	AddressCountryID      string `json:"address_country_id"`
	AddressLocalityID     string `json:"address_locality_id"`
	AddressStreet         string `json:"address_street"`
	AddressNumber         string `json:"address_number"`
	AddressComments       string `json:"address_comments"`
}

type UpdateMedicalProviderRequest struct {
	Name                  *string `json:"name,omitempty"`
	BusinessName          *string `json:"business_name,omitempty"`
	RUT                   *string `json:"rut,omitempty"`
	Email                 *string `json:"email,omitempty" validate:"omitempty,email"`
	Password              *string `json:"password,omitempty"`
	Phone                 *string `json:"phone,omitempty"`
	Status                *string `json:"status,omitempty"`
	MedicalProviderTypeID *string `json:"medical_provider_type_id,omitempty"`
	AddressCountryID      *string `json:"address_country_id,omitempty"`
	AddressLocalityID     *string `json:"address_locality_id,omitempty"`
	AddressStreet         *string `json:"address_street,omitempty"`
	AddressNumber         *string `json:"address_number,omitempty"`
	AddressComments       *string `json:"address_comments,omitempty"`
}

// LoginRequest authenticates a medical provider with email and password.
// Used primarily during development; production traffic scopes tenants via
// bearer tokens instead.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string                   `json:"access_token"`
	ExpiresIn   int64                    `json:"expires_in"`
	Provider    *MedicalProviderResponse `json:"provider"`
}

type MedicalProviderResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	BusinessName          string    `json:"business_name"`
	RUT                   string    `json:"rut"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	Status                string    `json:"status"`
	MedicalProviderTypeID string    `json:"medical_provider_type_id"`
	AddressCountryID      string    `json:"address_country_id"`
	AddressLocalityID     string    `json:"address_locality_id"`
	AddressStreet         string    `json:"address_street"`
	AddressNumber         string    `json:"address_number"`
	AddressComments       string    `json:"address_comments"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
