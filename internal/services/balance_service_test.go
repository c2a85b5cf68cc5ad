package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/kasetpay/go-slip-topup/internal/common"
	"github.com/kasetpay/go-slip-topup/internal/models"
)

func TestBalanceService_Get(t *testing.T) {
	type args struct {
		ctx    context.Context
		userID string
	}

	tests := []struct {
		name    string
		args    args
		doMock  func(h testServiceHelper)
		wantErr error
	}{
		{
			name: "happy path",
			args: args{ctx: context.TODO(), userID: "211"},
			doMock: func(h testServiceHelper) {
				h.mockBalanceRepository.
					EXPECT().
					Get(gomock.Any(), "211").
					Return(models.UserBalance{
						UserID:  "211",
						Balance: models.NewDecimalFromExternal(decimal.NewFromInt(150)),
					}, nil)
			},
		},
		{
			name:    "missing user id",
			args:    args{ctx: context.TODO(), userID: ""},
			wantErr: common.ErrMissingUserID,
		},
		{
			name: "balance not found",
			args: args{ctx: context.TODO(), userID: "404"},
			doMock: func(h testServiceHelper) {
				h.mockBalanceRepository.
					EXPECT().
					Get(gomock.Any(), "404").
					Return(models.UserBalance{}, common.ErrBalanceNotFound)
			},
			wantErr: common.ErrBalanceNotFound,
		},
		{
			name: "error repository",
			args: args{ctx: context.TODO(), userID: "211"},
			doMock: func(h testServiceHelper) {
				h.mockBalanceRepository.
					EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(models.UserBalance{}, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			helper := serviceTestHelper(t)

			if tc.doMock != nil {
				tc.doMock(helper)
			}

			res, err := helper.balanceService.Get(tc.args.ctx, tc.args.userID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.args.userID, res.UserID)
		})
	}
}
