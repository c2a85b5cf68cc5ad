package services

import (
	"context"

	"github.com/kasetpay/go-slip-topup/internal/common"
	"github.com/kasetpay/go-slip-topup/internal/models"
	"github.com/kasetpay/go-slip-topup/internal/monitoring"
)

type BalanceService interface {
	// Get returns the current wallet balance for one user.
	Get(ctx context.Context, userID string) (models.UserBalance, error)
}

type balance service

var _ BalanceService = (*balance)(nil)

func (b balance) Get(ctx context.Context, userID string) (res models.UserBalance, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if userID == "" {
		return res, common.ErrMissingUserID
	}

	res, err = b.srv.sqlRepo.GetBalanceRepository().Get(ctx, userID)
	if err != nil {
		return
	}

	return
}
