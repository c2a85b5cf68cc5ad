package slip2go

import "fmt"

// verifyPayload is the provider instruction part of the multipart request:
// run the provider-side duplicate check and match the receiving account
// against the configured expected account.
type (
	verifyPayload struct {
		CheckDuplicate bool            `json:"checkDuplicate"`
		CheckReceiver  []checkReceiver `json:"checkReceiver"`
	}

	checkReceiver struct {
		AccountType   string `json:"accountType"`
		AccountNameTH string `json:"accountNameTH"`
		AccountNameEN string `json:"accountNameEN"`
		AccountNumber string `json:"accountNumber"`
	}
)

// ProviderError is any verification call that did not yield a parsable
// success response: transport failure, non-success HTTP status, or a
// success status with an unparsable body. It is never interpreted further.
type ProviderError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("slip2go: %v", e.Err)
	}
	return fmt.Sprintf("slip2go: HTTP-%d: %s", e.StatusCode, e.Body)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
