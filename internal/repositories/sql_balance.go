package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kasetpay/go-slip-topup/internal/common"
	"github.com/kasetpay/go-slip-topup/internal/models"
	"github.com/kasetpay/go-slip-topup/internal/monitoring"
)

//go:generate mockgen -source=sql_balance.go -destination=mock/sql_balance.go -package=mock
type BalanceRepository interface {
	Get(ctx context.Context, userID string) (models.UserBalance, error)
	// Increase adds amount to the user's balance, creating the balance row
	// on first top-up.
	Increase(ctx context.Context, userID string, amount models.Decimal) error
}

type balanceRepository sqlRepo

var _ BalanceRepository = (*balanceRepository)(nil)

func (b balanceRepository) Get(ctx context.Context, userID string) (res models.UserBalance, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := b.r.extractTxRead(ctx)

	err = db.
		QueryRowContext(ctx, queryGetUserBalance, userID).
		Scan(
			&res.UserID,
			&res.Balance.Decimal,
			&res.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, common.ErrBalanceNotFound
		}
		return res, err
	}

	return res, nil
}

func (b balanceRepository) Increase(ctx context.Context, userID string, amount models.Decimal) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := b.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryIncreaseUserBalance, userID, amount.Decimal)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		return common.ErrNoRowsAffected
	}

	return nil
}
