package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasetpay/go-slip-topup/internal/config"
	"github.com/kasetpay/go-slip-topup/internal/models"
)

func atomicTestHelper(t *testing.T) (*sql.DB, sqlmock.Sqlmock, SQLRepository) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewSQLRepository(db, db, config.Config{})
}

func TestRepository_Atomic_Commit(t *testing.T) {
	db, mock, repo := atomicTestHelper(t)
	defer db.Close()

	amount := models.NewDecimalFromExternal(decimal.NewFromInt(100))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryIncreaseUserBalance)).
		WithArgs("211", amount.Decimal).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
		return r.GetBalanceRepository().Increase(ctx, "211", amount)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Atomic_RollbackOnError(t *testing.T) {
	db, mock, repo := atomicTestHelper(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Atomic_BeginError(t *testing.T) {
	db, mock, repo := atomicTestHelper(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(assert.AnError)

	err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
		return nil
	})

	assert.ErrorIs(t, err, assert.AnError)
}

// the steps callback must see the transaction, not the pool
func TestRepository_Atomic_StepsShareTransaction(t *testing.T) {
	db, mock, repo := atomicTestHelper(t)
	defer db.Close()

	amount := models.NewDecimalFromExternal(decimal.NewFromInt(50))
	record := creditRecordFixture()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryIncreaseUserBalance)).
		WithArgs(record.UserID, amount.Decimal).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryInsertCreditRecord)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
		if err := r.GetBalanceRepository().Increase(ctx, record.UserID, amount); err != nil {
			return err
		}
		return r.GetCreditRepository().Create(ctx, record)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
