package dto

import "time"

// CreatePrescriptionRequest carries the fields a medic submits when issuing
// a prescription. ProductID is the DNMA catalog key and is mandatory.
type CreatePrescriptionRequest struct {
	Code           string     `json:"code"`
	Status         string     `json:"status" validate:"required"`
	MedicID        string     `json:"medic_id" validate:"required"`
	PatientID      string     `json:"patient_id" validate:"required"`
	ProductID      string     `json:"product_id" validate:"required"`
	ProductType    string     `json:"product_type"`
	Dose           *int       `json:"dose,omitempty"`
	DoseUnit       *string    `json:"dose_unit,omitempty"`
	DoseType       *string    `json:"dose_type,omitempty"`
	Frequency      *int       `json:"frequency,omitempty"`
	FrequencyUnit  *string    `json:"frequency_unit,omitempty"`
	Duration       *int       `json:"duration,omitempty"`
	DurationUnit   *string    `json:"duration_unit,omitempty"`
	MedicalHistory *string    `json:"medical_history,omitempty"`
	Affections     *string    `json:"affections,omitempty"`
	ExpireAt       *time.Time `json:"expire_at,omitempty"`
}

// UpdatePrescriptionRequest applies a partial merge: only non-nil fields
// overwrite stored values.
type UpdatePrescriptionRequest struct {
	Code           *string    `json:"code,omitempty"`
	Status         *string    `json:"status,omitempty"`
	MedicID        *string    `json:"medic_id,omitempty"`
	PatientID      *string    `json:"patient_id,omitempty"`
	ProductID      *string    `json:"product_id,omitempty"`
	ProductType    *string    `json:"product_type,omitempty"`
	Dose           *int       `json:"dose,omitempty"`
	DoseUnit       *string    `json:"dose_unit,omitempty"`
	DoseType       *string    `json:"dose_type,omitempty"`
	Frequency      *int       `json:"frequency,omitempty"`
	FrequencyUnit  *string    `json:"frequency_unit,omitempty"`
	Duration       *int       `json:"duration,omitempty"`
	DurationUnit   *string    `json:"duration_unit,omitempty"`
	MedicalHistory *string    `json:"medical_history,omitempty"`
	Affections     *string    `json:"affections,omitempty"`
	ExpireAt       *time.Time `json:"expire_at,omitempty"`
}

// PrescriptionResponse is the API representation of a prescription,
// including display fields joined from the medic, patient and dispensing
// pharmacy, plus DNMA enrichment fields which stay empty when the catalog
// has no match or is unreachable.
type PrescriptionResponse struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Status         string     `json:"status"`
	MedicID        string     `json:"medic_id"`
	PatientID      string     `json:"patient_id"`
	ProductID      string     `json:"product_id"`
	ProductType    string     `json:"product_type"`
	Dose           *int       `json:"dose,omitempty"`
	DoseUnit       *string    `json:"dose_unit,omitempty"`
	DoseType       *string    `json:"dose_type,omitempty"`
	Frequency      *int       `json:"frequency,omitempty"`
	FrequencyUnit  *string    `json:"frequency_unit,omitempty"`
	Duration       *int       `json:"duration,omitempty"`
	DurationUnit   *string    `json:"duration_unit,omitempty"`
	MedicalHistory *string    `json:"medical_history,omitempty"`
	Affections     *string    `json:"affections,omitempty"`
	ExpireAt       *time.Time `json:"expire_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Display fields from joined relations
	MedicName       string  `json:"medic_name,omitempty"`
	MedicLastname   string  `json:"medic_lastname,omitempty"`
	MedicCJP        string  `json:"medic_cjp,omitempty"`
	PatientName     string  `json:"patient_name,omitempty"`
	PatientLastname string  `json:"patient_lastname,omitempty"`
	PatientDocument *string `json:"patient_document,omitempty"`
	PharmacyName    *string `json:"pharmacy_name,omitempty"`

	// DNMA enrichment fields
	AmpDsc           string `json:"amp_dsc,omitempty"`
	ProdMsp          string `json:"prod_msp,omitempty"`
	NombreLaboratory string `json:"nombre_laboratory,omitempty"`
	RutLaboratory    string `json:"rut_laboratory,omitempty"`
}
