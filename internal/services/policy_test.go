package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kasetpay/go-slip-topup/internal/config"
	"github.com/kasetpay/go-slip-topup/internal/models"
)

func policyTestConfig() config.Slip2Go {
	return config.Slip2Go{
		AccountNameTH: "นางสาว ปลายฟ้า ม",
		AccountNameEN: "MS PLAIFA M",
		AccountNumber: "1234567890",
	}
}

func amountPtr(v float64) *models.Decimal {
	d := models.NewDecimalFromExternal(decimal.NewFromFloat(v))
	return &d
}

func Test_decide(t *testing.T) {
	cfg := policyTestConfig()

	tests := []struct {
		name           string
		result         models.SlipResult
		wantStatus     models.DecisionStatus
		wantReasonCode string
	}{
		{
			name:           "hard fail wrong receiver",
			result:         models.SlipResult{Code: models.SlipCodeWrongReceiver},
			wantStatus:     models.DecisionRejected,
			wantReasonCode: models.SlipCodeWrongReceiver,
		},
		{
			name:           "hard fail forged slip",
			result:         models.SlipResult{Code: models.SlipCodeForged},
			wantStatus:     models.DecisionRejected,
			wantReasonCode: models.SlipCodeForged,
		},
		{
			name:           "hard fail duplicate slip",
			result:         models.SlipResult{Code: models.SlipCodeDuplicate},
			wantStatus:     models.DecisionRejected,
			wantReasonCode: models.SlipCodeDuplicate,
		},
		{
			name:           "unrecognized code",
			result:         models.SlipResult{Code: "999999", Message: "unknown"},
			wantStatus:     models.DecisionRejected,
			wantReasonCode: models.ReasonUnrecognizedCode,
		},
		{
			name:           "empty code",
			result:         models.SlipResult{},
			wantStatus:     models.DecisionRejected,
			wantReasonCode: models.ReasonUnrecognizedCode,
		},
		{
			name: "receiver mismatch",
			result: models.SlipResult{
				Code:         models.SlipCodeOK,
				ReceiverName: "somebody else",
				Amount:       amountPtr(100),
			},
			wantStatus:     models.DecisionRejected,
			wantReasonCode: models.ReasonReceiverMismatch,
		},
		{
			name: "thai receiver substring matches",
			result: models.SlipResult{
				Code:         models.SlipCodeOK,
				ReceiverName: "นางสาว ปลายฟ้า มะลิวัลย์",
				Amount:       amountPtr(100),
			},
			wantStatus: models.DecisionAccepted,
		},
		{
			name: "english receiver matches case-insensitively",
			result: models.SlipResult{
				Code:         models.SlipCodeOKQR,
				ReceiverName: "ms plaifa m.",
				Amount:       amountPtr(100),
			},
			wantStatus: models.DecisionAccepted,
		},
		{
			name: "amount missing",
			result: models.SlipResult{
				Code:         models.SlipCodeOK,
				ReceiverName: "MS PLAIFA M",
			},
			wantStatus:     models.DecisionRejected,
			wantReasonCode: models.ReasonAmountMissing,
		},
		{
			name: "amount zero",
			result: models.SlipResult{
				Code:         models.SlipCodeOK,
				ReceiverName: "MS PLAIFA M",
				Amount:       amountPtr(0),
			},
			wantStatus:     models.DecisionRejected,
			wantReasonCode: models.ReasonAmountMissing,
		},
		{
			name: "accepted cached code",
			result: models.SlipResult{
				Code:         models.SlipCodeOKCached,
				ReceiverName: "MS PLAIFA M",
				Amount:       amountPtr(250.75),
			},
			wantStatus: models.DecisionAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decide(tt.result, cfg)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantReasonCode, got.ReasonCode)
			if got.Status == models.DecisionRejected {
				assert.NotEmpty(t, got.DisplayReason)
			}
		})
	}
}

func Test_decide_RejectionCarriesHardFailMessage(t *testing.T) {
	got := decide(models.SlipResult{Code: models.SlipCodeDuplicate}, policyTestConfig())

	assert.Equal(t, models.HardFailMessages[models.SlipCodeDuplicate], got.DisplayReason)
}

func Test_receiverMatches(t *testing.T) {
	tests := []struct {
		name     string
		observed string
		cfg      config.Slip2Go
		want     bool
	}{
		{
			name:     "no configured names skips check",
			observed: "anyone",
			cfg:      config.Slip2Go{},
			want:     true,
		},
		{
			name:     "thai only config matches",
			observed: "นางสาว ปลายฟ้า ม",
			cfg:      config.Slip2Go{AccountNameTH: "นางสาว ปลายฟ้า ม"},
			want:     true,
		},
		{
			name:     "thai only config rejects english receiver",
			observed: "MS PLAIFA M",
			cfg:      config.Slip2Go{AccountNameTH: "นางสาว ปลายฟ้า ม"},
			want:     false,
		},
		{
			name:     "empty receiver never matches configured names",
			observed: "",
			cfg:      policyTestConfig(),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, receiverMatches(tt.observed, tt.cfg))
		})
	}
}
