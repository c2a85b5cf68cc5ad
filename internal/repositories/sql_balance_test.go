package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kasetpay/go-slip-topup/internal/common"
	"github.com/kasetpay/go-slip-topup/internal/config"
	"github.com/kasetpay/go-slip-topup/internal/models"
)

func TestBalanceRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(balanceTestSuite))
}

type balanceTestSuite struct {
	suite.Suite
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    BalanceRepository
}

func (suite *balanceTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetBalanceRepository()
}

func (suite *balanceTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *balanceTestSuite) TestRepository_Get() {
	type args struct {
		ctx        context.Context
		userID     string
		setupMocks func()
	}

	testCases := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "test success",
			args: args{
				ctx:    context.Background(),
				userID: "211",
				setupMocks: func() {
					rows := sqlmock.
						NewRows([]string{"userId", "balance", "updatedAt"}).
						AddRow("211", decimal.NewFromInt(150), time.Now())

					suite.mock.
						ExpectQuery(regexp.QuoteMeta(queryGetUserBalance)).
						WithArgs("211").
						WillReturnRows(rows)
				},
			},
		},
		{
			name: "test no rows",
			args: args{
				ctx:    context.Background(),
				userID: "404",
				setupMocks: func() {
					suite.mock.
						ExpectQuery(regexp.QuoteMeta(queryGetUserBalance)).
						WithArgs("404").
						WillReturnError(sql.ErrNoRows)
				},
			},
			wantErr: common.ErrBalanceNotFound,
		},
		{
			name: "test query error",
			args: args{
				ctx:    context.Background(),
				userID: "211",
				setupMocks: func() {
					suite.mock.
						ExpectQuery(regexp.QuoteMeta(queryGetUserBalance)).
						WithArgs("211").
						WillReturnError(assert.AnError)
				},
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.args.setupMocks()

			res, err := suite.repo.Get(tc.args.ctx, tc.args.userID)
			if tc.wantErr != nil {
				assert.ErrorIs(suite.T(), err, tc.wantErr)
				return
			}

			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tc.args.userID, res.UserID)
			assert.True(suite.T(), res.Balance.Equal(decimal.NewFromInt(150)))
		})
	}
}

func (suite *balanceTestSuite) TestRepository_Increase() {
	amount := models.NewDecimalFromExternal(decimal.NewFromFloat(99.5))

	type args struct {
		ctx        context.Context
		userID     string
		setupMocks func()
	}

	testCases := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "test success",
			args: args{
				ctx:    context.Background(),
				userID: "211",
				setupMocks: func() {
					suite.mock.
						ExpectExec(regexp.QuoteMeta(queryIncreaseUserBalance)).
						WithArgs("211", amount.Decimal).
						WillReturnResult(sqlmock.NewResult(0, 1))
				},
			},
		},
		{
			name: "test no rows affected",
			args: args{
				ctx:    context.Background(),
				userID: "211",
				setupMocks: func() {
					suite.mock.
						ExpectExec(regexp.QuoteMeta(queryIncreaseUserBalance)).
						WithArgs("211", amount.Decimal).
						WillReturnResult(sqlmock.NewResult(0, 0))
				},
			},
			wantErr: common.ErrNoRowsAffected,
		},
		{
			name: "test exec error",
			args: args{
				ctx:    context.Background(),
				userID: "211",
				setupMocks: func() {
					suite.mock.
						ExpectExec(regexp.QuoteMeta(queryIncreaseUserBalance)).
						WithArgs("211", amount.Decimal).
						WillReturnError(assert.AnError)
				},
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			tc.args.setupMocks()

			err := suite.repo.Increase(tc.args.ctx, tc.args.userID, amount)
			if tc.wantErr != nil {
				assert.ErrorIs(suite.T(), err, tc.wantErr)
				return
			}

			assert.NoError(suite.T(), err)
		})
	}
}
