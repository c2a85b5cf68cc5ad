package common

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrNoRowsAffected      = errors.New("no rows affected")
	ErrValidation          = errors.New("validation failed")
	ErrDataNotFound        = errors.New("data not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrSlipEmpty          = errors.New("slip image is empty")
	ErrSlipTooLarge       = errors.New("slip image exceeds the allowed size")
	ErrMissingUserID      = errors.New("user id is empty")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrAlreadyCredited    = errors.New("transfer reference already credited")
	ErrBalanceNotFound    = errors.New("balance not found for user")
	ErrCreditRecordExists = errors.New("credit record already exists for transfer reference")

	// ErrCreditingFault marks a claimed-but-uncredited transfer. It must
	// never be downgraded to a user-level rejection: it requires operator
	// reconciliation.
	ErrCreditingFault = errors.New("crediting failed after idempotency claim")

	ErrNoRows = sql.ErrNoRows
)

type WrapError struct {
	Causer interface{}
	Err    error
}

func (e WrapError) Error() string {
	return fmt.Sprintf("%v, root cause: %v", e.Causer, e.Err)
}
