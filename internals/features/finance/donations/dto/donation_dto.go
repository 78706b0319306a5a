// file: internals/features/finance/donations/dto/donation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"faithtracker_backend/internals/features/finance/donations/model"
)

type DonationCreateDTO struct {
	DonationDonorName  string  `json:"donation_donor_name" validate:"required,max=100"`
	DonationDonorEmail string  `json:"donation_donor_email" validate:"required,email,max=100"`
	DonationAmountIDR  int64   `json:"donation_amount_idr" validate:"required,min=10000"`
	DonationMessage    *string `json:"donation_message,omitempty"`
}

type DonationResponse struct {
	DonationID          uuid.UUID  `json:"donation_id"`
	DonationCampusID    uuid.UUID  `json:"donation_campus_id"`
	DonationDonorName   string     `json:"donation_donor_name"`
	DonationAmountIDR   int64      `json:"donation_amount_idr"`
	DonationStatus      string     `json:"donation_status"`
	DonationOrderID     string     `json:"donation_order_id"`
	DonationSnapToken   *string    `json:"donation_snap_token,omitempty"`
	DonationRedirectURL *string    `json:"donation_redirect_url,omitempty"`
	DonationPaidAt      *time.Time `json:"donation_paid_at,omitempty"`
	DonationMessage     *string    `json:"donation_message,omitempty"`
}

func ToDonationResponse(m model.DonationModel) DonationResponse {
	return DonationResponse{
		DonationID:          m.DonationID,
		DonationCampusID:    m.DonationCampusID,
		DonationDonorName:   m.DonationDonorName,
		DonationAmountIDR:   m.DonationAmountIDR,
		DonationStatus:      m.DonationStatus,
		DonationOrderID:     m.DonationOrderID,
		DonationSnapToken:   m.DonationSnapToken,
		DonationRedirectURL: m.DonationRedirectURL,
		DonationPaidAt:      m.DonationPaidAt,
		DonationMessage:     m.DonationMessage,
	}
}

func ToDonationResponses(list []model.DonationModel) []DonationResponse {
	out := make([]DonationResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToDonationResponse(m))
	}
	return out
}
