package entity

import "time"

// PrescriptionFilter is a domain-level filter for querying prescriptions.
// Used by the repository layer to avoid coupling with delivery DTOs.
// All fields are optional except the provider scope, which the caller must
// always fill from the authenticated identity, never from request input.
type PrescriptionFilter struct {
	MedicalProviderID string
	MedicID           string
	PatientID         string
	Statuses          []string   // exact match against the status column; empty = no restriction
	StartDate         *time.Time // inclusive lower bound on created_at
	EndDate           *time.Time // inclusive upper bound on created_at
	Page              int
	Size              int
}
