package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosque_backend/internals/features/donations/drafts/model"
)

var stepNow = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestApplyTypeStep(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		month     string
		wantErr   bool
		wantType  string
		wantMonth string
	}{
		{name: "valid type with explicit month", input: "zakat", month: "January", wantType: "zakat", wantMonth: "January"},
		{name: "month defaults to current", input: "sadaqah", month: "", wantType: "sadaqah", wantMonth: "March"},
		{name: "empty type rejected", input: "", month: "", wantErr: true},
		{name: "unknown type rejected", input: "lottery", month: "", wantErr: true},
		{name: "unknown month rejected", input: "zakat", month: "Smarch", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &model.DonationDraft{}
			err := ApplyTypeStep(draft, tt.input, tt.month, stepNow)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrStepInvalid)
				assert.Empty(t, draft.DraftType, "failed step must not mutate the draft")
				assert.Empty(t, draft.DraftMonth)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, draft.DraftType)
			assert.Equal(t, tt.wantMonth, draft.DraftMonth)
		})
	}
}

func TestApplyAmountStep(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    float64
	}{
		{name: "plain integer", input: "1000", want: 1000},
		{name: "decimal", input: "250.50", want: 250.50},
		{name: "whitespace trimmed", input: "  42  ", want: 42},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "zero rejected", input: "0", wantErr: true},
		{name: "negative rejected", input: "-5", wantErr: true},
		{name: "NaN rejected", input: "NaN", wantErr: true},
		{name: "infinity rejected", input: "Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &model.DonationDraft{DraftAmount: 77}
			err := ApplyAmountStep(draft, tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrStepInvalid)
				assert.Equal(t, 77.0, draft.DraftAmount, "failed step must keep the carried amount")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, draft.DraftAmount)
		})
	}
}

func TestApplyMessageStep(t *testing.T) {
	draft := &model.DonationDraft{}

	ApplyMessageStep(draft, "  for the new roof  ")
	assert.Equal(t, "for the new roof", draft.DraftMessage)

	// empty is fine, the message is optional
	ApplyMessageStep(draft, "")
	assert.Empty(t, draft.DraftMessage)
}

func TestApplyPaymentStep(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "bkash", input: "bkash"},
		{name: "nagad", input: "nagad"},
		{name: "rocket", input: "rocket"},
		{name: "cash", input: "cash"},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "unknown rejected", input: "paypal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &model.DonationDraft{}
			err := ApplyPaymentStep(draft, tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrStepInvalid)
				assert.Empty(t, draft.DraftPaymentMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, draft.DraftPaymentMethod)
		})
	}
}
