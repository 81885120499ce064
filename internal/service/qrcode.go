package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the public menu link for a restaurant as a PNG.
// Customers scan it to land on the ordering page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(restaurantID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/order/%d", g.BaseURL, restaurantID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
