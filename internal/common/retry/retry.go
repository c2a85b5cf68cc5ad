package retry

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
	"github.com/kasetpay/go-slip-topup/internal/config"
)

const DefaultMaxRetries uint64 = 3

// Retryer retries an operation with exponential backoff. If the operation
// keeps failing the giveUp callback runs once and its error is returned.
//
//go:generate mockgen -source=retry.go -destination=mock/retry.go -package=mock
type Retryer interface {
	Retry(ctx context.Context, operation, giveUp func() error) error
	StopRetryWithErr(err error) error
}

type exponentialBackoff struct {
	ebCfg *config.ExponentialBackOffConfig
}

func NewExponentialBackOff(ebCfg *config.ExponentialBackOffConfig) Retryer {
	if ebCfg.MaxBackoffTime < 0 {
		ebCfg.MaxBackoffTime = backoff.DefaultMaxElapsedTime
	}

	if ebCfg.BackoffMultiplier <= 0 {
		ebCfg.BackoffMultiplier = backoff.DefaultMultiplier
	}

	if ebCfg.MaxRetries <= 0 {
		ebCfg.MaxRetries = DefaultMaxRetries
	}

	return &exponentialBackoff{ebCfg: ebCfg}
}

func (r *exponentialBackoff) Retry(ctx context.Context, operation, giveUp func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.MaxElapsedTime = r.ebCfg.MaxBackoffTime
	eb.Multiplier = r.ebCfg.BackoffMultiplier

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(eb, r.ebCfg.MaxRetries), ctx))
	if err != nil {
		xlog.Debugf(ctx, "retry budget exhausted: %v", err)
		if err := giveUp(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// StopRetryWithErr aborts the retry loop. Call it inside the operation for
// errors that can never succeed on retry.
func (r *exponentialBackoff) StopRetryWithErr(err error) error {
	return backoff.Permanent(err)
}
