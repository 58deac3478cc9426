package converter

import (
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
)

func PatientToResponse(p *entity.Patient) *dto.PatientResponse {
	if p == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                p.ID,
		Name:              p.Name,
		Lastname:          p.Lastname,
		Email:             p.Email,
		Phone:             p.Phone,
		Document:          p.Document,
		User:              p.User,
		Birthdate:         p.Birthdate,
		Sex:               p.Sex,
		AddressCountryID:  p.AddressCountryID,
		AddressLocalityID: p.AddressLocalityID,
		AddressStreet:     p.AddressStreet,
		AddressNumber:     p.AddressNumber,
		AddressComments:   p.AddressComments,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func PatientsToResponses(patients []entity.Patient) []*dto.PatientResponse {
	responses := make([]*dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, PatientToResponse(&patients[i]))
	}
	return responses
}
