package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kasetpay/go-slip-topup/internal/config"

	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	br *balanceRepository
	cr *creditRepository
}

func NewSQLRepository(
	dbWrite *sql.DB,
	dbRead *sql.DB,
	cfg config.Config,
) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.br = (*balanceRepository)(&rtx.common)
	rtx.cr = (*creditRepository)(&rtx.common)

	return rtx
}

//go:generate mockgen -source=sql_main.go -destination=mock/sql_main.go -package=mock
type SQLRepository interface {
	// Atomic runs steps inside one database transaction. Queries issued
	// through the repositories passed to steps share that transaction.
	Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) error
	GetBalanceRepository() BalanceRepository
	GetCreditRepository() CreditRepository
}

var _ SQLRepository = (*Repository)(nil)

func (r *Repository) Atomic(ctx context.Context, steps func(ctx context.Context, r SQLRepository) error) (err error) {
	tx, err := r.dbWrite.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "[DATABASE.TRANSACTION.BEGIN]")
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			err = fmt.Errorf("panic happened because: %v", p)
			xlog.Panic(ctx, "[DATABASE.TRANSACTION.PANIC]", xlog.Err(err))
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
			}
			xlog.Warn(ctx, "[DATABASE.TRANSACTION.ROLLBACK]", xlog.Err(err))
		} else {
			if err = tx.Commit(); err != nil {
				if errors.Is(err, sql.ErrTxDone) {
					xlog.Warn(ctx, "[DATABASE.TRANSACTION.ALREADY_COMMITTED_OR_ROLLEDBACK]", xlog.Err(err))
					err = nil
				}
			}

			xlog.Info(ctx, "[DATABASE.TRANSACTION.COMMIT]")
		}
	}()
	ctx = injectTx(ctx, tx)
	err = steps(ctx, r)
	return
}

func (r *Repository) GetBalanceRepository() BalanceRepository {
	return r.br
}

func (r *Repository) GetCreditRepository() CreditRepository {
	return r.cr
}
