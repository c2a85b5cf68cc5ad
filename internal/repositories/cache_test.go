package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/kasetpay/go-slip-topup/internal/common"
)

func cacheTestHelper(t *testing.T) (redismock.ClientMock, CacheRepository) {
	t.Helper()
	t.Parallel()

	db, mock := redismock.NewClientMock()
	cacheRepo := NewCacheRepository(db)

	return mock, cacheRepo
}

func TestCacheRepository_SetIfNotExists(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	type args struct {
		key  string
		data interface{}
		ttl  time.Duration
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		want    bool
		wantErr bool
	}{
		{
			name: "test claim won",
			args: args{
				key:  "locking-topup-2024070412345678",
				data: "211",
				ttl:  24 * time.Hour,
			},
			want: true,
			doMock: func(args args) {
				mock.ExpectSetNX(args.key, args.data, args.ttl).SetVal(true)
			},
		},
		{
			name: "test claim lost",
			args: args{
				key:  "locking-topup-2024070412345678",
				data: "212",
				ttl:  24 * time.Hour,
			},
			want: false,
			doMock: func(args args) {
				mock.ExpectSetNX(args.key, args.data, args.ttl).SetVal(false)
			},
		},
		{
			name: "test error",
			args: args{
				key:  "locking-topup-2024070412345678",
				data: "211",
				ttl:  24 * time.Hour,
			},
			wantErr: true,
			doMock: func(args args) {
				mock.ExpectSetNX(args.key, args.data, args.ttl).SetErr(redis.ErrClosed)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			got, err := rc.SetIfNotExists(context.TODO(), tt.args.key, tt.args.data, tt.args.ttl)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
			mock.ClearExpect()
		})
	}
}

func TestCacheRepository_Get(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	tests := []struct {
		name    string
		key     string
		doMock  func(key string)
		want    string
		wantErr error
	}{
		{
			name: "test success",
			key:  "some-key",
			doMock: func(key string) {
				mock.ExpectGet(key).SetVal(" value ")
			},
			want: "value",
		},
		{
			name: "test not found",
			key:  "missing-key",
			doMock: func(key string) {
				mock.ExpectGet(key).RedisNil()
			},
			wantErr: common.ErrDataNotFound,
		},
		{
			name: "test error",
			key:  "some-key",
			doMock: func(key string) {
				mock.ExpectGet(key).SetErr(redis.ErrClosed)
			},
			wantErr: redis.ErrClosed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.key)
			}

			got, err := rc.Get(context.TODO(), tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
			mock.ClearExpect()
		})
	}
}

func TestCacheRepository_Del(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	mock.ExpectDel("key-1", "key-2").SetVal(2)

	err := rc.Del(context.TODO(), "key-1", "key-2")
	assert.NoError(t, err)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
