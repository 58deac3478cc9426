package converter

import (
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
)

// MedicToResponse converts a Medic entity to its response DTO. The
// provider name is filled only when the relation was preloaded.
func MedicToResponse(m *entity.Medic) *dto.MedicResponse {
	if m == nil {
		return nil
	}

	resp := &dto.MedicResponse{
		ID:                m.ID,
		Name:              m.Name,
		Lastname:          m.Lastname,
		Gender:            m.Gender,
		Email:             m.Email,
		Phone:             m.Phone,
		Birthdate:         m.Birthdate,
		Document:          m.Document,
		CJP:               m.CJP,
		Status:            m.Status,
		EspecialityID:     m.EspecialityID,
		MedicalProviderID: m.MedicalProviderID,
		AddressCountryID:  m.AddressCountryID,
		AddressLocalityID: m.AddressLocalityID,
		AddressStreet:     m.AddressStreet,
		AddressNumber:     m.AddressNumber,
		AddressComments:   m.AddressComments,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}

	if m.MedicalProvider.ID != "" {
		resp.MedicalProviderName = m.MedicalProvider.Name
	}

	return resp
}

func MedicsToResponses(medics []entity.Medic) []*dto.MedicResponse {
	responses := make([]*dto.MedicResponse, 0, len(medics))
	for i := range medics {
		responses = append(responses, MedicToResponse(&medics[i]))
	}
	return responses
}
