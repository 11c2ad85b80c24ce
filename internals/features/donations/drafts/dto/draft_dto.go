package dto

import (
	"github.com/google/uuid"

	donationDTO "mosque_backend/internals/features/donations/donations/dto"
	"mosque_backend/internals/features/donations/drafts/model"
)

// ================== REQUEST ==================
// Wizard values travel in text form and are re-parsed by the server,
// mirroring how the app passes step parameters between screens.
type StartDraftRequest struct {
	Type  string `json:"type" validate:"required"`
	Month string `json:"month"` // optional; defaults to the current month
}

type AmountStepRequest struct {
	Amount string `json:"amount" validate:"required"`
}

type MessageStepRequest struct {
	Message string `json:"message"`
}

type PaymentStepRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// ================== RESPONSE ==================
type DraftResponse struct {
	DraftID       uuid.UUID `json:"draft_id"`
	Donor         string    `json:"donor"`
	Anonymous     bool      `json:"anonymous"`
	Type          string    `json:"type"`
	Month         string    `json:"month"`
	Amount        float64   `json:"amount"`
	Message       string    `json:"message,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Status        string    `json:"status"`
	Committable   bool      `json:"committable"`
}

type HoldResponse struct {
	DraftID  uuid.UUID `json:"draft_id"`
	State    string    `json:"state"`
	Progress float64   `json:"progress"`
}

type ReleaseResponse struct {
	Committed bool                          `json:"committed"`
	Draft     *DraftResponse                `json:"draft"`
	Entry     *donationDTO.DonationResponse `json:"entry,omitempty"`
}

// ================ CONVERSION =================
func ToDraftResponse(m *model.DonationDraft) *DraftResponse {
	return &DraftResponse{
		DraftID:       m.DraftID,
		Donor:         m.DraftDonorName,
		Anonymous:     m.DraftAnonymous,
		Type:          m.DraftType,
		Month:         m.DraftMonth,
		Amount:        m.DraftAmount,
		Message:       m.DraftMessage,
		PaymentMethod: m.DraftPaymentMethod,
		Status:        m.DraftStatus,
		Committable:   m.Committable(),
	}
}
