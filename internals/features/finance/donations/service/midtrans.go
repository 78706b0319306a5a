// file: internals/features/finance/donations/service/midtrans.go
package service

import (
	"errors"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"faithtracker_backend/internals/features/finance/donations/model"
)

var SnapClient snap.Client

// InitMidtrans dipanggil saat bootstrap app.
// useProduction=false → Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// GenerateSnapToken membuat Snap token + redirect_url untuk satu donasi.
func GenerateSnapToken(d model.DonationModel) (string, string, error) {
	if d.DonationAmountIDR <= 0 {
		return "", "", errors.New("invalid donation_amount_idr")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonationOrderID,
			GrossAmt: d.DonationAmountIDR,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: d.DonationDonorName,
			Email: d.DonationDonorEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
