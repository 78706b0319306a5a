// file: internals/features/finance/donations/service/webhook.go
package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"faithtracker_backend/internals/features/finance/donations/model"
)

// HandleDonationStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]any) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	var donation model.DonationModel
	if err := db.First(&donation, "donation_order_id = ?", orderID).Error; err != nil {
		log.Println("[ERROR] Donasi tidak ditemukan:", err)
		return fmt.Errorf("donation with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		donation.DonationStatus = model.DonationStatusPaid
		donation.DonationPaidAt = &now
	case "expire":
		donation.DonationStatus = model.DonationStatusExpired
	case "cancel", "deny":
		donation.DonationStatus = model.DonationStatusCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	if err := db.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status donasi:", err)
		return err
	}
	return nil
}
