package slip2go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/kasetpay/go-slip-topup/internal/common/httpclient"
	"github.com/kasetpay/go-slip-topup/internal/config"
	"github.com/kasetpay/go-slip-topup/internal/models"
	"github.com/kasetpay/go-slip-topup/internal/monitoring"
)

const verifyPath = "/api/verify-slip/qr-image/info"

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock
type Verifier interface {
	// Verify submits one slip image. It returns the parsed provider
	// response, or a *ProviderError for transport failures, non-success
	// statuses and unparsable bodies. It never retries.
	Verify(ctx context.Context, image []byte, filename string) (*models.SlipVerifyResponse, error)
}

type client struct {
	cfg     config.Slip2Go
	wrapper *httpclient.RequestWrapper
}

var _ Verifier = (*client)(nil)

func New(cfg config.Config) Verifier {
	restyClient := resty.New().SetTimeout(cfg.Slip2Go.Timeout)
	restyClient.SetTransport(monitoring.NewMiddlewareRoundTripper(restyClient.GetClient().Transport))

	return &client{
		cfg:     cfg.Slip2Go,
		wrapper: httpclient.NewRequestWrapper(restyClient, "slip2go", "[SLIP2GO.VERIFY]"),
	}
}

func (c *client) Verify(ctx context.Context, image []byte, filename string) (res *models.SlipVerifyResponse, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	payload, err := json.Marshal(verifyPayload{
		CheckDuplicate: true,
		CheckReceiver: []checkReceiver{{
			AccountType:   c.cfg.GetAccountType(),
			AccountNameTH: c.cfg.AccountNameTH,
			AccountNameEN: c.cfg.AccountNameEN,
			AccountNumber: c.cfg.AccountNumber,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal verify payload: %w", err)
	}

	url := c.cfg.BaseURL + verifyPath

	resp, err := c.wrapper.DoRequest(ctx, "POST", url, func(r *resty.Request) *resty.Request {
		return r.
			SetHeader("Authorization", "Bearer "+c.cfg.SecretKey).
			SetMultipartField("file", filename, contentTypeFor(filename), bytes.NewReader(image)).
			SetMultipartField("payload", "", "", bytes.NewReader(payload))
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	res = new(models.SlipVerifyResponse)
	if err := json.Unmarshal(resp.Body(), res); err != nil {
		return nil, &ProviderError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
			Err:        fmt.Errorf("invalid JSON body: %w", err),
		}
	}

	return res, nil
}

// contentTypeFor picks the part content type from the filename extension.
// This is a heuristic, not a magic-byte sniff: a wrong extension passes
// through and the provider rejects it.
func contentTypeFor(filename string) string {
	if strings.HasSuffix(strings.ToLower(filename), ".png") {
		return "image/png"
	}
	return "image/jpeg"
}
