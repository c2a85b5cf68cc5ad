package services

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/kasetpay/go-slip-topup/internal/config"
	"github.com/kasetpay/go-slip-topup/internal/models"
)

var acceptedSlipCodes = []string{
	models.SlipCodeOK,
	models.SlipCodeOKCached,
	models.SlipCodeOKQR,
}

// decide applies the acceptance rules to one interpreted slip, in order:
// hard provider failures, unrecognized codes, receiver mismatch, missing
// amount. The first rule that fires wins; a slip that passes them all is
// accepted. decide is pure, side effects belong to the coordinator.
func decide(result models.SlipResult, cfg config.Slip2Go) models.Decision {
	if msg, ok := models.HardFailMessages[result.Code]; ok {
		return models.NewRejectedDecision(result.Code, msg, result)
	}

	if !slices.Contains(acceptedSlipCodes, result.Code) {
		return models.NewRejectedDecision(
			models.ReasonUnrecognizedCode,
			models.MsgUnrecognizedCode(result.Message),
			result,
		)
	}

	if !receiverMatches(result.ReceiverName, cfg) {
		return models.NewRejectedDecision(
			models.ReasonReceiverMismatch,
			models.MsgReceiverMismatch(result.ReceiverName, cfg.AccountNameTH, cfg.AccountNameEN),
			result,
		)
	}

	if !result.HasAmount() {
		return models.NewRejectedDecision(
			models.ReasonAmountMissing,
			models.MsgAmountMissing,
			result,
		)
	}

	return models.NewAcceptedDecision(result)
}

// receiverMatches does a case-insensitive substring match of the observed
// receiver against either configured account name. Bank slips abbreviate
// and truncate names, so an exact comparison would reject valid slips.
// With no configured names the check is skipped.
func receiverMatches(observed string, cfg config.Slip2Go) bool {
	expected := make([]string, 0, 2)
	for _, name := range []string{cfg.AccountNameTH, cfg.AccountNameEN} {
		if name != "" {
			expected = append(expected, strings.ToLower(name))
		}
	}

	if len(expected) == 0 {
		return true
	}

	got := strings.ToLower(observed)
	for _, name := range expected {
		if strings.Contains(got, name) {
			return true
		}
	}

	return false
}
