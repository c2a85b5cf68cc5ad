package models

import (
	"github.com/shopspring/decimal"
)

// Slip2Go response codes. The accepted set plus the hard-fail codes the
// provider documents for slip verification.
const (
	SlipCodeOK            = "200000"
	SlipCodeOKCached      = "200001"
	SlipCodeOKQR          = "200200"
	SlipCodeWrongReceiver = "200401"
	SlipCodeForged        = "200500"
	SlipCodeDuplicate     = "200501"
)

// SlipVerifyResponse is the raw Slip2Go response body. Every field is
// optional on the wire; absence stays absent here and is resolved during
// interpretation, never defaulted earlier.
type (
	SlipVerifyResponse struct {
		Code    interface{}     `json:"code"`
		Message string          `json:"message"`
		Data    *SlipVerifyData `json:"data"`
	}

	SlipVerifyData struct {
		Amount      *decimal.Decimal `json:"amount"`
		TransRef    string           `json:"transRef"`
		Ref1        string           `json:"ref1"`
		Ref2        string           `json:"ref2"`
		DateTime    string           `json:"dateTime"`
		ReferenceID string           `json:"referenceId"`
		Sender      *SlipParty       `json:"sender"`
		Receiver    *SlipParty       `json:"receiver"`
	}

	SlipParty struct {
		Account *SlipAccount `json:"account"`
	}

	SlipAccount struct {
		Name string `json:"name"`
	}
)

// SlipResult is the canonical record derived from one provider response.
// It is built purely from the response: missing fields stay zero-valued
// (Amount stays nil), and nothing here performs I/O.
type SlipResult struct {
	Code           string   `json:"code"`
	Message        string   `json:"message"`
	Amount         *Decimal `json:"amount"`
	TransactionRef string   `json:"transactionRef"`
	Timestamp      string   `json:"timestamp"`
	SenderName     string   `json:"senderName"`
	ReceiverName   string   `json:"receiverName"`
	ReferenceID    string   `json:"referenceId"`
}

// InterpretSlip normalizes a raw Slip2Go response. Malformed or missing
// fields degrade to zero values, they never produce an error: transport
// and parse failures are already filtered out by the verification client.
func InterpretSlip(raw *SlipVerifyResponse) SlipResult {
	if raw == nil {
		return SlipResult{}
	}

	res := SlipResult{
		Code:    codeToString(raw.Code),
		Message: raw.Message,
	}

	d := raw.Data
	if d == nil {
		return res
	}

	res.Timestamp = d.DateTime
	res.ReferenceID = d.ReferenceID
	res.TransactionRef = firstNonEmpty(d.TransRef, d.Ref1, d.Ref2)
	res.SenderName = partyAccountName(d.Sender)
	res.ReceiverName = partyAccountName(d.Receiver)

	if d.Amount != nil {
		amount := NewDecimalFromExternal(*d.Amount)
		res.Amount = &amount
	}

	return res
}

// HasAmount reports whether the slip carries a usable amount. Zero is
// treated the same as absent, matching the provider's behavior for
// unreadable slips.
func (s SlipResult) HasAmount() bool {
	return s.Amount != nil && !s.Amount.IsZero()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func partyAccountName(p *SlipParty) string {
	if p == nil || p.Account == nil {
		return ""
	}
	return p.Account.Name
}

// the provider has been observed returning the code both as a JSON string
// and as a number, normalize both to the string form.
func codeToString(code interface{}) string {
	switch v := code.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return decimal.NewFromFloat(v).String()
	default:
		return ""
	}
}
