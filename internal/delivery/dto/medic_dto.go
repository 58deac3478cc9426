package dto

import "time"

type CreateMedicRequest struct {
	Name              string `json:"name" validate:"required"`
	Lastname          string `json:"lastname"`
	Gender            string `json:"gender"`
	Email             string `json:"email" validate:"required,email"`
	Password          string `json:"password"`
	Phone             string `json:"phone"`
	Birthdate         string `json:"birthdate"`
	Document          string `json:"document"`
	CJP               string `json:"cjp"`
	Status            string `json:"status"`
	EspecialityID     string `json:"especiality_id"`
	MedicalProviderID string `json:"medical_provider_id" validate:"required"`
	AddressCountryID  string `json:"address_country_id"`
	AddressLocalityID string `json:"address_locality_id"`
	AddressStreet     string `json:"address_street"`
	AddressNumber     string `json:"address_number"`
	AddressComments   string `json:"address_comments"`
}

// UpdateMedicRequest applies a partial merge: only non-nil fields overwrite
// stored values. An email change that collides with another medic is
// rejected.
type UpdateMedicRequest struct {
	Name              *string `json:"name,omitempty"`
	Lastname          *string `json:"lastname,omitempty"`
	Gender            *string `json:"gender,omitempty"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Password          *string `json:"password,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Birthdate         *string `json:"birthdate,omitempty"`
	Document          *string `json:"document,omitempty"`
	CJP               *string `json:"cjp,omitempty"`
	Status            *string `json:"status,omitempty"`
	EspecialityID     *string `json:"especiality_id,omitempty"`
	MedicalProviderID *string `json:"medical_provider_id,omitempty"`
	AddressCountryID  *string `json:"address_country_id,omitempty"`
	AddressLocalityID *string `json:"address_locality_id,omitempty"`
	AddressStreet     *string `json:"address_street,omitempty"`
	AddressNumber     *string `json:"address_number,omitempty"`
	AddressComments   *string `json:"address_comments,omitempty"`
}

type MedicResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Lastname            string    `json:"lastname"`
	Gender              string    `json:"gender"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Birthdate           string    `json:"birthdate"`
	Document            string    `json:"document"`
	CJP                 string    `json:"cjp"`
	Status              string    `json:"status"`
	EspecialityID       string    `json:"especiality_id"`
	MedicalProviderID   string    `json:"medical_provider_id"`
	MedicalProviderName string    `json:"medical_provider_name,omitempty"`
	AddressCountryID    string    `json:"address_country_id"`
	AddressLocalityID   string    `json:"address_locality_id"`
	AddressStreet       string    `json:"address_street"`
	AddressNumber       string    `json:"address_number"`
	AddressComments     string    `json:"address_comments"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
