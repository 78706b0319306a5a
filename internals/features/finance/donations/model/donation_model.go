// file: internals/features/finance/donations/model/donation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status donasi mengikuti siklus Midtrans.
const (
	DonationStatusPending  = "pending"
	DonationStatusPaid     = "paid"
	DonationStatusExpired  = "expired"
	DonationStatusCanceled = "canceled"
)

type DonationModel struct {
	// PK
	DonationID uuid.UUID `json:"donation_id" gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	DonationCampusID uuid.UUID `json:"donation_campus_id" gorm:"column:donation_campus_id;type:uuid;not null;index:idx_donations_campus"`

	// Identitas donatur (tidak wajib punya akun)
	DonationDonorName  string  `json:"donation_donor_name" gorm:"column:donation_donor_name;type:varchar(100);not null"`
	DonationDonorEmail string  `json:"donation_donor_email" gorm:"column:donation_donor_email;type:varchar(100);not null"`
	DonationMessage    *string `json:"donation_message,omitempty" gorm:"column:donation_message;type:text"`

	// Transaksi
	DonationOrderID   string `json:"donation_order_id" gorm:"column:donation_order_id;type:varchar(64);not null;uniqueIndex:ux_donations_order"`
	DonationAmountIDR int64  `json:"donation_amount_idr" gorm:"column:donation_amount_idr;type:bigint;not null"`
	DonationStatus    string `json:"donation_status" gorm:"column:donation_status;type:varchar(10);not null;default:'pending';index:idx_donations_status"`

	// Snap
	DonationSnapToken   *string    `json:"donation_snap_token,omitempty" gorm:"column:donation_snap_token;type:text"`
	DonationRedirectURL *string    `json:"donation_redirect_url,omitempty" gorm:"column:donation_redirect_url;type:text"`
	DonationPaidAt      *time.Time `json:"donation_paid_at,omitempty" gorm:"column:donation_paid_at;type:timestamptz"`

	// Timestamps
	DonationCreatedAt time.Time      `json:"donation_created_at" gorm:"column:donation_created_at;type:timestamptz;not null;autoCreateTime"`
	DonationUpdatedAt time.Time      `json:"donation_updated_at" gorm:"column:donation_updated_at;type:timestamptz;not null;autoUpdateTime"`
	DonationDeletedAt gorm.DeletedAt `json:"donation_deleted_at,omitempty" gorm:"column:donation_deleted_at;type:timestamptz;index"`
}

func (DonationModel) TableName() string { return "donations" }
