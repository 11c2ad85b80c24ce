package dto

import (
	"github.com/google/uuid"

	"mosque_backend/internals/features/donations/donations/model"
)

// ================== RESPONSE ==================
// Anonymous entries expose only the display name, never the user id.
type DonationResponse struct {
	DonationID    uuid.UUID `json:"donation_id"`
	OrderID       string    `json:"order_id"`
	Donor         string    `json:"donor"`
	Type          string    `json:"type"`
	Month         string    `json:"month"`
	Amount        float64   `json:"amount"`
	Message       string    `json:"message,omitempty"`
	Anonymous     bool      `json:"anonymous"`
	PaymentMethod string    `json:"payment_method"`
	Date          string    `json:"date"`
}

type MonthlySummaryResponse struct {
	Month string  `json:"month"`
	Year  int     `json:"year"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// ================ CONVERSION =================
func ToDonationResponse(m *model.Donation) *DonationResponse {
	return &DonationResponse{
		DonationID:    m.DonationID,
		OrderID:       m.DonationOrderID,
		Donor:         m.DonationDonorName,
		Type:          m.DonationType,
		Month:         m.DonationMonth,
		Amount:        m.DonationAmount,
		Message:       m.DonationMessage,
		Anonymous:     m.DonationAnonymous,
		PaymentMethod: m.DonationPaymentMethod,
		Date:          m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToDonationResponseList(models []model.Donation) []DonationResponse {
	result := make([]DonationResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToDonationResponse(&m))
	}
	return result
}
