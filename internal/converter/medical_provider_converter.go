package converter

import (
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/dto"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/domain/entity"
)

func MedicalProviderToResponse(p *entity.MedicalProvider) *dto.MedicalProviderResponse {
	if p == nil {
		return nil
	}

	return &dto.MedicalProviderResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		BusinessName:          p.BusinessName,
		RUT:                   p.RUT,
		Email:                 p.Email,
		Phone:                 p.Phone,
		Status:                p.Status,
		MedicalProviderTypeID: p.MedicalProviderTypeID,
		AddressCountryID:      p.AddressCountryID,
		AddressLocalityID:     p.AddressLocalityID,
		AddressStreet:         p.AddressStreet,
		AddressNumber:         p.AddressNumber,
		AddressComments:       p.AddressComments,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

func MedicalProvidersToResponses(providers []entity.MedicalProvider) []*dto.MedicalProviderResponse {
	responses := make([]*dto.MedicalProviderResponse, 0, len(providers))
	for i := range providers {
		responses = append(responses, MedicalProviderToResponse(&providers[i]))
	}
	return responses
}
