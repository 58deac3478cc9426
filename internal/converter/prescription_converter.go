package converter

import (
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity to its response
// DTO, flattening the preloaded medic, patient and dispensing pharmacy into
// display fields. A prescription without a dispensation keeps a nil
// pharmacy name.
func PrescriptionToResponse(p *entity.Prescription) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	resp := &dto.PrescriptionResponse{
		ID:             p.ID,
		Code:           p.Code,
		Status:         p.Status,
		MedicID:        p.MedicID,
		PatientID:      p.PatientID,
		ProductID:      p.ProductID,
		ProductType:    p.ProductType,
		Dose:           p.Dose,
		DoseUnit:       p.DoseUnit,
		DoseType:       p.DoseType,
		Frequency:      p.Frequency,
		FrequencyUnit:  p.FrequencyUnit,
		Duration:       p.Duration,
		DurationUnit:   p.DurationUnit,
		MedicalHistory: p.MedicalHistory,
		Affections:     p.Affections,
		ExpireAt:       p.ExpireAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	if p.Medic.ID != "" {
		resp.MedicName = p.Medic.Name
		resp.MedicLastname = p.Medic.Lastname
		resp.MedicCJP = p.Medic.CJP
	}
	if p.Patient.ID != "" {
		resp.PatientName = p.Patient.Name
		resp.PatientLastname = p.Patient.Lastname
		resp.PatientDocument = p.Patient.Document
	}
	if p.Dispensation != nil && p.Dispensation.Pharmacy.ID != "" {
		name := p.Dispensation.Pharmacy.Name
		resp.PharmacyName = &name
	}

	return resp
}

// ApplyAmpLookup copies DNMA catalog metadata onto a response. NotFound and
// LookupFailed results leave the enrichment fields empty.
func ApplyAmpLookup(resp *dto.PrescriptionResponse, lookup entity.AmpLookup) {
	if resp == nil || lookup.Status != entity.AmpFound {
		return
	}
	resp.AmpDsc = lookup.Details.Description
	resp.ProdMsp = lookup.Details.ProdMSP
	resp.NombreLaboratory = lookup.Details.LaboratoryName
	resp.RutLaboratory = lookup.Details.LaboratoryRUT
}
