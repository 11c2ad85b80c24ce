package model

import (
	"time"

	"github.com/google/uuid"
)

// Donation is one committed ledger entry. The ledger is append-only:
// there is no update or delete surface, and the row carries no
// UpdatedAt/DeletedAt on purpose.
type Donation struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	DonationOrderID string `gorm:"column:donation_order_id;type:varchar(100);not null;unique" json:"donation_order_id"`

	DonationUserID *uuid.UUID `gorm:"column:donation_user_id;type:uuid" json:"donation_user_id,omitempty"`

	// Display name; "Anonymous" for guest/anonymous donors.
	DonationDonorName string `gorm:"column:donation_donor_name;type:varchar(100);not null" json:"donation_donor_name"`

	DonationType  string  `gorm:"column:donation_type;type:varchar(20);not null" json:"donation_type"`
	DonationMonth string  `gorm:"column:donation_month;type:varchar(20);not null" json:"donation_month"`
	DonationAmount float64 `gorm:"column:donation_amount;type:numeric(12,2);not null;check:donation_amount > 0" json:"donation_amount"`

	DonationMessage   string `gorm:"column:donation_message;type:text" json:"donation_message"`
	DonationAnonymous bool   `gorm:"column:donation_anonymous;not null;default:false" json:"donation_anonymous"`

	DonationPaymentMethod string `gorm:"column:donation_payment_method;type:varchar(20);not null" json:"donation_payment_method"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Donation) TableName() string {
	return "donations"
}
