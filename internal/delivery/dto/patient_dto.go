package dto

import "time"

type CreatePatientRequest struct {
	Name              string  `json:"name" validate:"required"`
	Lastname          string  `json:"lastname"`
	Email             string  `json:"email" validate:"omitempty,email"`
	Phone             string  `json:"phone"`
	Document          *string `json:"document,omitempty"`
	User              string  `json:"user"`
	Password          string  `json:"password"`
	Birthdate         string  `json:"birthdate"`
	Sex               string  `json:"sex"`
	AddressCountryID  string  `json:"address_country_id"`
	AddressLocalityID string  `json:"address_locality_id"`
	AddressStreet     string  `json:"address_street"`
	AddressNumber     string  `json:"address_number"`
	AddressComments   string  `json:"address_comments"`
}

type UpdatePatientRequest struct {
	Name              *string `json:"name,omitempty"`
	Lastname          *string `json:"lastname,omitempty"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone             *string `json:"phone,omitempty"`
	Document          *string `json:"document,omitempty"`
	User              *string `json:"user,omitempty"`
	Password          *string `json:"password,omitempty"`
	Birthdate         *string `json:"birthdate,omitempty"`
	Sex               *string `json:"sex,omitempty"`
	AddressCountryID  *string `json:"address_country_id,omitempty"`
	AddressLocalityID *string `json:"address_locality_id,omitempty"`
	AddressStreet     *string `json:"address_street,omitempty"`
	AddressNumber     *string `json:"address_number,omitempty"`
	AddressComments   *string `json:"address_comments,omitempty"`
}

type PatientResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Lastname          string    `json:"lastname"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Document          *string   `json:"document,omitempty"`
	User              string    `json:"user"`
	Birthdate         string    `json:"birthdate"`
	Sex               string    `json:"sex"`
	AddressCountryID  string    `json:"address_country_id"`
	AddressLocalityID string    `json:"address_locality_id"`
	AddressStreet     string    `json:"address_street"`
	AddressNumber     string    `json:"address_number"`
	AddressComments   string    `json:"address_comments"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
