package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kasetpay/go-slip-topup/internal/common"
	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
	"github.com/kasetpay/go-slip-topup/internal/common/publisher"
	"github.com/kasetpay/go-slip-topup/internal/models"
	"github.com/kasetpay/go-slip-topup/internal/monitoring"
	"github.com/kasetpay/go-slip-topup/internal/repositories"
	"github.com/kasetpay/go-slip-topup/internal/slip2go"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type TopupService interface {
	// ProcessSlip runs one slip through verification, policy and crediting.
	// It returns a Decision for every outcome the submitter can act on;
	// the error path is reserved for infrastructure failures and for
	// CreditingFault (common.ErrCreditingFault).
	ProcessSlip(ctx context.Context, req models.ProcessSlipRequest) (models.Decision, error)
	GetHistory(ctx context.Context, req models.ListCreditRecordsRequest) ([]models.CreditRecord, error)
}

type topup service

var _ TopupService = (*topup)(nil)

func (t topup) ProcessSlip(ctx context.Context, req models.ProcessSlipRequest) (res models.Decision, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = t.validateRequest(req); err != nil {
		return
	}

	raw, err := t.srv.verifier.Verify(ctx, req.Image, req.Filename)
	if err != nil {
		var provErr *slip2go.ProviderError
		if errors.As(err, &provErr) {
			xlog.Warn(ctx, "[TOPUP.VERIFY.PROVIDER_ERROR]",
				xlog.String("userId", req.UserID),
				xlog.Err(provErr),
			)
			return models.NewProviderErrorDecision(models.SlipResult{}), nil
		}
		return
	}

	result := models.InterpretSlip(raw)

	res = decide(result, t.srv.conf.Slip2Go)
	if !res.Accepted() {
		xlog.Info(ctx, "[TOPUP.POLICY.REJECTED]",
			xlog.String("userId", req.UserID),
			xlog.String("reasonCode", res.ReasonCode),
			xlog.String("slipCode", result.Code),
		)
		return res, nil
	}

	return t.credit(ctx, req.UserID, result)
}

func (t topup) validateRequest(req models.ProcessSlipRequest) error {
	if req.UserID == "" {
		return common.ErrMissingUserID
	}

	if len(req.Image) == 0 {
		return common.ErrSlipEmpty
	}

	if max := t.srv.conf.TopupConfig.MaxSlipSizeBytes; max > 0 && int64(len(req.Image)) > max {
		return common.ErrSlipTooLarge
	}

	return nil
}

// credit performs the exactly-once balance mutation for one accepted slip.
// Ordering matters: durable history pre-check, then the redis claim, then
// the transactional write. Any failure after the claim is won is a
// CreditingFault, never reported as success and never silently retried.
func (t topup) credit(ctx context.Context, userID string, result models.SlipResult) (res models.Decision, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if result.TransactionRef == "" {
		// a slip with no reference can not be credited exactly-once
		xlog.Warn(ctx, "[TOPUP.CREDIT.MISSING_REF]", xlog.String("userId", userID))
		return models.NewProviderErrorDecision(result), nil
	}

	repoCredit := t.srv.sqlRepo.GetCreditRepository()

	exists, err := repoCredit.ExistsByTransactionRef(ctx, result.TransactionRef)
	if err != nil {
		return
	}
	if exists {
		return models.NewRejectedDecision(models.ReasonAlreadyCredited, models.MsgAlreadyCredited, result), nil
	}

	claimed, err := t.srv.cacheRepo.SetIfNotExists(ctx, models.CreditClaimKey(result.TransactionRef), userID, t.claimTTL())
	if err != nil {
		return
	}
	if !claimed {
		xlog.Info(ctx, "[TOPUP.CREDIT.CLAIM_LOST]",
			xlog.String("userId", userID),
			xlog.String("transactionRef", result.TransactionRef),
		)
		return models.NewRejectedDecision(models.ReasonAlreadyCredited, models.MsgAlreadyCredited, result), nil
	}

	record := models.CreditRecord{
		ID:             uuid.NewString(),
		UserID:         userID,
		Provider:       models.ProviderSlip2Go,
		Amount:         *result.Amount,
		TransactionRef: result.TransactionRef,
		SenderName:     result.SenderName,
		ReceiverName:   result.ReceiverName,
		ReferenceID:    result.ReferenceID,
		SlipTimestamp:  result.Timestamp,
		CreatedAt:      common.Now(),
	}

	err = t.srv.sqlRepo.Atomic(ctx, func(ctx context.Context, r repositories.SQLRepository) error {
		if err := r.GetBalanceRepository().Increase(ctx, userID, record.Amount); err != nil {
			return err
		}
		return r.GetCreditRepository().Create(ctx, record)
	})
	if err != nil {
		if errors.Is(err, common.ErrCreditRecordExists) {
			// the claim expired and another submission won the durable race
			return models.NewRejectedDecision(models.ReasonAlreadyCredited, models.MsgAlreadyCredited, result), nil
		}

		t.alertCreditFault(ctx, userID, result, err)
		return res, fmt.Errorf("%w: %v", common.ErrCreditingFault, err)
	}

	xlog.Info(ctx, "[TOPUP.CREDIT.SUCCESS]",
		xlog.String("userId", userID),
		xlog.String("transactionRef", record.TransactionRef),
		xlog.String("amount", record.Amount.String()),
	)

	t.publishNotification(ctx, record)

	return models.NewAcceptedDecision(result), nil
}

func (t topup) GetHistory(ctx context.Context, req models.ListCreditRecordsRequest) (res []models.CreditRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if req.UserID == "" {
		return nil, common.ErrMissingUserID
	}

	if req.Limit <= 0 {
		req.Limit = defaultHistoryLimit
	}
	if req.Limit > maxHistoryLimit {
		req.Limit = maxHistoryLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	return t.srv.sqlRepo.GetCreditRepository().GetList(ctx, req)
}

func (t topup) claimTTL() time.Duration {
	if ttl := t.srv.conf.TopupConfig.ClaimTTL; ttl > 0 {
		return ttl
	}
	return models.TTLCreditClaim
}

// publishNotification is fire-and-forget: a broker outage must not fail a
// credit that already happened.
func (t topup) publishNotification(ctx context.Context, record models.CreditRecord) {
	notification := models.TopupNotification{
		UserID:         record.UserID,
		Amount:         record.Amount,
		TransactionRef: record.TransactionRef,
		SenderName:     record.SenderName,
		CreditedAt:     record.CreatedAt,
	}

	err := t.srv.retryer.Retry(ctx,
		func() error {
			return t.srv.topupNotificationPub.Publish(ctx, notification, publisher.WithKey(record.TransactionRef))
		},
		func() error {
			xlog.Error(ctx, "[TOPUP.NOTIFICATION.PUBLISH_FAILED]",
				xlog.String("transactionRef", record.TransactionRef),
			)
			return nil
		},
	)
	if err != nil {
		xlog.Error(ctx, "[TOPUP.NOTIFICATION.PUBLISH_FAILED]",
			xlog.String("transactionRef", record.TransactionRef),
			xlog.Err(err),
		)
	}
}

// alertCreditFault leaves the reconciliation trail for a transfer that was
// claimed but not credited. The redis claim is intentionally kept: it
// expires on its own and blocking blind resubmits until an operator looks
// is safer than risking a double credit.
func (t topup) alertCreditFault(ctx context.Context, userID string, result models.SlipResult, cause error) {
	xlog.Error(ctx, "[TOPUP.CREDIT.FAULT]",
		xlog.String("userId", userID),
		xlog.String("transactionRef", result.TransactionRef),
		xlog.Err(cause),
	)

	alert := models.CreditFaultAlert{
		UserID:         userID,
		TransactionRef: result.TransactionRef,
		Amount:         result.Amount,
		Detail:         cause.Error(),
		OccurredAt:     common.Now(),
	}

	pubErr := t.srv.retryer.Retry(ctx,
		func() error {
			return t.srv.creditFaultPub.Publish(ctx, alert, publisher.WithKey(result.TransactionRef))
		},
		func() error {
			xlog.Error(ctx, "[TOPUP.CREDIT.FAULT_ALERT_PUBLISH_FAILED]",
				xlog.String("transactionRef", result.TransactionRef),
			)
			return nil
		},
	)
	if pubErr != nil {
		xlog.Error(ctx, "[TOPUP.CREDIT.FAULT_ALERT_PUBLISH_FAILED]",
			xlog.String("transactionRef", result.TransactionRef),
			xlog.Err(pubErr),
		)
	}
}
