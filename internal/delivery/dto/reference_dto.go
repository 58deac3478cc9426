package dto

type CountryRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code"`
}

type LocalityRequest struct {
	CountryID string `json:"country_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

type NotificationTemplateRequest struct {
	Name    string `json:"name" validate:"required"`
	Channel string `json:"channel" validate:"required,oneof=EMAIL SMS WHATSAPP"`
	Subject string `json:"subject"`
	Body    string `json:"body" validate:"required"`
}
