package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"mosque_backend/internals/constants"
	"mosque_backend/internals/features/donations/drafts/model"
)

// ErrStepInvalid wraps every wizard-step validation failure. A failed
// step never mutates the draft; the client keeps the continue control
// disabled and the carried values intact.
var ErrStepInvalid = errors.New("invalid step input")

// ApplyTypeStep sets the donation category and the month. The month
// defaults to the current calendar month when omitted.
func ApplyTypeStep(d *model.DonationDraft, donationType, month string, now time.Time) error {
	donationType = strings.TrimSpace(donationType)
	if donationType == "" {
		return fmt.Errorf("%w: donation type is required", ErrStepInvalid)
	}
	if !constants.IsDonationType(donationType) {
		return fmt.Errorf("%w: unknown donation type %q", ErrStepInvalid, donationType)
	}

	month = strings.TrimSpace(month)
	if month == "" {
		month = now.Month().String()
	} else if !constants.IsMonthName(month) {
		return fmt.Errorf("%w: unknown month %q", ErrStepInvalid, month)
	}

	d.DraftType = donationType
	d.DraftMonth = month
	return nil
}

// ApplyAmountStep parses the amount from its text form (the wizard
// serializes every value to text) and requires a finite number > 0.
func ApplyAmountStep(d *model.DonationDraft, amountText string) error {
	amountText = strings.TrimSpace(amountText)
	if amountText == "" {
		return fmt.Errorf("%w: amount is required", ErrStepInvalid)
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not a number", ErrStepInvalid, amountText)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: amount must be finite", ErrStepInvalid)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrStepInvalid)
	}

	d.DraftAmount = amount
	return nil
}

// ApplyMessageStep stores the optional free-text message. Always valid.
func ApplyMessageStep(d *model.DonationDraft, message string) {
	d.DraftMessage = strings.TrimSpace(message)
}

// ApplyPaymentStep sets the payment channel label.
func ApplyPaymentStep(d *model.DonationDraft, method string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return fmt.Errorf("%w: payment method is required", ErrStepInvalid)
	}
	if !constants.IsPaymentMethod(method) {
		return fmt.Errorf("%w: unknown payment method %q", ErrStepInvalid, method)
	}

	d.DraftPaymentMethod = method
	return nil
}
