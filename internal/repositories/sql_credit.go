package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kasetpay/go-slip-topup/internal/common"
	"github.com/kasetpay/go-slip-topup/internal/models"
	"github.com/kasetpay/go-slip-topup/internal/monitoring"
)

// postgres unique_violation
const pqUniqueViolation = "23505"

//go:generate mockgen -source=sql_credit.go -destination=mock/sql_credit.go -package=mock
type CreditRepository interface {
	// Create inserts one credit record. A second insert for the same
	// transaction reference returns common.ErrCreditRecordExists, it never
	// overwrites the first row.
	Create(ctx context.Context, record models.CreditRecord) error
	ExistsByTransactionRef(ctx context.Context, transactionRef string) (bool, error)
	GetList(ctx context.Context, req models.ListCreditRecordsRequest) ([]models.CreditRecord, error)
}

type creditRepository sqlRepo

var _ CreditRepository = (*creditRepository)(nil)

func (c creditRepository) Create(ctx context.Context, record models.CreditRecord) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := c.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryInsertCreditRecord,
		record.ID,
		record.UserID,
		record.Provider,
		record.Amount.Decimal,
		record.TransactionRef,
		record.SenderName,
		record.ReceiverName,
		record.ReferenceID,
		record.SlipTimestamp,
		record.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return common.ErrCreditRecordExists
		}
		return err
	}

	return nil
}

func (c creditRepository) ExistsByTransactionRef(ctx context.Context, transactionRef string) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := c.r.extractTxRead(ctx)

	err = db.
		QueryRowContext(ctx, queryCreditRecordExists, transactionRef).
		Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (c creditRepository) GetList(ctx context.Context, req models.ListCreditRecordsRequest) (res []models.CreditRecord, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := c.r.extractTxRead(ctx)

	query, args, err := buildListCreditRecordsQuery(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	for rows.Next() {
		var record models.CreditRecord
		err = rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Provider,
			&record.Amount.Decimal,
			&record.TransactionRef,
			&record.SenderName,
			&record.ReceiverName,
			&record.ReferenceID,
			&record.SlipTimestamp,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		res = append(res, record)
	}

	return res, rows.Err()
}
