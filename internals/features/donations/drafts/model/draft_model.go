package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusCommitted = "committed"
)

// DonationDraft accumulates the wizard selections between steps. The
// donor identity and the anonymous flag are captured once, when the
// draft is created; they are not re-evaluated at commit time.
type DonationDraft struct {
	DraftID uuid.UUID `gorm:"column:draft_id;type:uuid;default:gen_random_uuid();primaryKey" json:"draft_id"`

	DraftUserID     *uuid.UUID `gorm:"column:draft_user_id;type:uuid" json:"draft_user_id,omitempty"`
	DraftDonorName  string     `gorm:"column:draft_donor_name;type:varchar(100);not null" json:"draft_donor_name"`
	DraftDonorEmail string     `gorm:"column:draft_donor_email;type:varchar(255)" json:"draft_donor_email"`
	DraftAnonymous  bool       `gorm:"column:draft_anonymous;not null;default:false" json:"draft_anonymous"`

	DraftType          string  `gorm:"column:draft_type;type:varchar(20);not null" json:"draft_type"`
	DraftMonth         string  `gorm:"column:draft_month;type:varchar(20);not null" json:"draft_month"`
	DraftAmount        float64 `gorm:"column:draft_amount;type:numeric(12,2);not null;default:0" json:"draft_amount"`
	DraftMessage       string  `gorm:"column:draft_message;type:text" json:"draft_message"`
	DraftPaymentMethod string  `gorm:"column:draft_payment_method;type:varchar(20)" json:"draft_payment_method"`

	DraftStatus string `gorm:"column:draft_status;type:varchar(20);not null;default:'draft'" json:"draft_status"`

	// Set while the confirmation press is held; nil when idle.
	DraftHoldStartedAt *time.Time `gorm:"column:draft_hold_started_at" json:"draft_hold_started_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (DonationDraft) TableName() string {
	return "donation_drafts"
}

// Committable reports whether every required wizard field is set.
func (d *DonationDraft) Committable() bool {
	return d.DraftType != "" &&
		d.DraftMonth != "" &&
		d.DraftAmount > 0 &&
		d.DraftPaymentMethod != ""
}
