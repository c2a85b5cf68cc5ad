package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecision_Accepted(t *testing.T) {
	assert.True(t, NewAcceptedDecision(SlipResult{}).Accepted())
	assert.False(t, NewRejectedDecision(ReasonAmountMissing, MsgAmountMissing, SlipResult{}).Accepted())
	assert.False(t, NewProviderErrorDecision(SlipResult{}).Accepted())
}

func TestHardFailMessages(t *testing.T) {
	// every documented hard-fail code carries a localized message
	for _, code := range []string{SlipCodeWrongReceiver, SlipCodeForged, SlipCodeDuplicate} {
		msg, ok := HardFailMessages[code]
		assert.True(t, ok, code)
		assert.NotEmpty(t, msg, code)
	}

	_, ok := HardFailMessages[SlipCodeOK]
	assert.False(t, ok)
}

func TestMsgReceiverMismatch(t *testing.T) {
	tests := []struct {
		name       string
		expectedEN string
		want       string
	}{
		{
			name:       "thai and english names",
			expectedEN: "MR PLAIFA M",
			want:       "⚠️ ชื่อบัญชีผู้รับไม่ตรง\nพบ: somebody else\nต้องเป็น: นางสาว ปลายฟ้า ม หรือ MR PLAIFA M",
		},
		{
			name: "thai name only",
			want: "⚠️ ชื่อบัญชีผู้รับไม่ตรง\nพบ: somebody else\nต้องเป็น: นางสาว ปลายฟ้า ม",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MsgReceiverMismatch("somebody else", "นางสาว ปลายฟ้า ม", tt.expectedEN)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMsgUnrecognizedCode(t *testing.T) {
	assert.Equal(t, "❌ สลิปไม่ถูกต้อง (bad slip)", MsgUnrecognizedCode("bad slip"))
}

func TestMsgTopupSuccess(t *testing.T) {
	amount := NewDecimalFromExternal(decimal.NewFromFloat(250.75))

	got := MsgTopupSuccess("TR-1", amount, "")
	assert.Contains(t, got, "TR-1")
	assert.Contains(t, got, "250.75")
	assert.Contains(t, got, "ชื่อผู้โอน: -")
}

func TestCreditClaimKey(t *testing.T) {
	assert.Equal(t, "locking-topup-TR-1", CreditClaimKey("TR-1"))
}
