package models

import "fmt"

type DecisionStatus string

const (
	DecisionAccepted      DecisionStatus = "accepted"
	DecisionRejected      DecisionStatus = "rejected"
	DecisionProviderError DecisionStatus = "provider_error"
)

// Rejection reason codes. Hard provider failures reuse the provider code
// itself; the rest are produced by our own policy checks.
const (
	ReasonUnrecognizedCode = "unrecognized"
	ReasonReceiverMismatch = "receiver-mismatch"
	ReasonAmountMissing    = "amount-missing"
	ReasonAlreadyCredited  = "already-credited"
)

// HardFailMessages maps the provider's hard-fail codes to the localized
// text shown to the submitter.
var HardFailMessages = map[string]string{
	SlipCodeWrongReceiver: "บัญชีผู้รับไม่ถูกต้อง ⚠️",
	SlipCodeForged:        "สลิปปลอม / สลิปเสีย ❌",
	SlipCodeDuplicate:     "สลิปซ้ำ ห้ามใช้ซ้ำ ⚠️",
}

const (
	MsgAmountMissing   = "ไม่พบยอดเงินในสลิป"
	MsgAlreadyCredited = "สลิปนี้ถูกใช้เติมเงินไปแล้ว ⚠️"
	MsgProviderError   = "ไม่สามารถตรวจสอบสลิปได้ กรุณาลองใหม่อีกครั้ง ❌"
)

// Decision is the single outcome of one pipeline run: exactly one of
// accepted, rejected, or provider error.
type Decision struct {
	Status        DecisionStatus
	ReasonCode    string
	DisplayReason string
	Result        SlipResult
}

func NewAcceptedDecision(result SlipResult) Decision {
	return Decision{
		Status: DecisionAccepted,
		Result: result,
	}
}

func NewRejectedDecision(reasonCode, displayReason string, result SlipResult) Decision {
	return Decision{
		Status:        DecisionRejected,
		ReasonCode:    reasonCode,
		DisplayReason: displayReason,
		Result:        result,
	}
}

func NewProviderErrorDecision(result SlipResult) Decision {
	return Decision{
		Status:        DecisionProviderError,
		DisplayReason: MsgProviderError,
		Result:        result,
	}
}

func (d Decision) Accepted() bool {
	return d.Status == DecisionAccepted
}

// MsgTopupSuccess renders the localized confirmation for one credited
// slip. The sender falls back to "-" when the provider omitted it.
func MsgTopupSuccess(transactionRef string, amount Decimal, senderName string) string {
	if senderName == "" {
		senderName = "-"
	}
	return fmt.Sprintf(
		"เติมเงินสำเร็จ ! ✅\nเลขอ้างอิง: %s\nจำนวน: %s บาท\nชื่อผู้โอน: %s",
		transactionRef, amount.String(), senderName,
	)
}

func MsgUnrecognizedCode(providerMessage string) string {
	return fmt.Sprintf("❌ สลิปไม่ถูกต้อง (%s)", providerMessage)
}

// MsgReceiverMismatch includes both the observed and the expected names so
// the submitter can see what went wrong.
func MsgReceiverMismatch(observed, expectedTH, expectedEN string) string {
	expected := expectedTH
	if expectedEN != "" {
		expected = fmt.Sprintf("%s หรือ %s", expectedTH, expectedEN)
	}
	return fmt.Sprintf("⚠️ ชื่อบัญชีผู้รับไม่ตรง\nพบ: %s\nต้องเป็น: %s", observed, expected)
}
