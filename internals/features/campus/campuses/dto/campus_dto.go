// file: internals/features/campus/campuses/dto/campus_dto.go
package dto

import (
	"github.com/google/uuid"

	"faithtracker_backend/internals/features/campus/campuses/model"
)

// Create
type CampusCreateDTO struct {
	CampusName           string  `json:"campus_name" validate:"required,max=100"`
	CampusSlug           string  `json:"campus_slug" validate:"required,max=100"`
	CampusCity           *string `json:"campus_city,omitempty" validate:"omitempty,max=80"`
	CampusTimezone       string  `json:"campus_timezone" validate:"required,max=64"`
	CampusWhatsappNumber *string `json:"campus_whatsapp_number,omitempty" validate:"omitempty,max=25"`
}

func CampusCreateDTOToModel(in CampusCreateDTO) model.CampusModel {
	return model.CampusModel{
		CampusName:           in.CampusName,
		CampusSlug:           in.CampusSlug,
		CampusCity:           in.CampusCity,
		CampusTimezone:       in.CampusTimezone,
		CampusWhatsappNumber: in.CampusWhatsappNumber,
	}
}

// Update (partial)
type CampusUpdateDTO struct {
	CampusName           *string `json:"campus_name,omitempty" validate:"omitempty,max=100"`
	CampusCity           *string `json:"campus_city,omitempty" validate:"omitempty,max=80"`
	CampusTimezone       *string `json:"campus_timezone,omitempty" validate:"omitempty,max=64"`
	CampusWhatsappNumber *string `json:"campus_whatsapp_number,omitempty" validate:"omitempty,max=25"`
}

func ApplyCampusUpdate(m *model.CampusModel, in CampusUpdateDTO) {
	if in.CampusName != nil {
		m.CampusName = *in.CampusName
	}
	if in.CampusCity != nil {
		m.CampusCity = in.CampusCity
	}
	if in.CampusTimezone != nil {
		m.CampusTimezone = *in.CampusTimezone
	}
	if in.CampusWhatsappNumber != nil {
		m.CampusWhatsappNumber = in.CampusWhatsappNumber
	}
}

// Response
type CampusResponse struct {
	CampusID             uuid.UUID `json:"campus_id"`
	CampusName           string    `json:"campus_name"`
	CampusSlug           string    `json:"campus_slug"`
	CampusCity           *string   `json:"campus_city,omitempty"`
	CampusTimezone       string    `json:"campus_timezone"`
	CampusWhatsappNumber *string   `json:"campus_whatsapp_number,omitempty"`
}

func ToCampusResponse(m model.CampusModel) CampusResponse {
	return CampusResponse{
		CampusID:             m.CampusID,
		CampusName:           m.CampusName,
		CampusSlug:           m.CampusSlug,
		CampusCity:           m.CampusCity,
		CampusTimezone:       m.CampusTimezone,
		CampusWhatsappNumber: m.CampusWhatsappNumber,
	}
}

func ToCampusResponses(list []model.CampusModel) []CampusResponse {
	out := make([]CampusResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToCampusResponse(m))
	}
	return out
}
