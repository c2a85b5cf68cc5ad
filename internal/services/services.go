package services

import (
	"github.com/kasetpay/go-slip-topup/internal/common/publisher"
	"github.com/kasetpay/go-slip-topup/internal/common/retry"
	"github.com/kasetpay/go-slip-topup/internal/config"
	"github.com/kasetpay/go-slip-topup/internal/repositories"
	"github.com/kasetpay/go-slip-topup/internal/slip2go"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	verifier slip2go.Verifier

	topupNotificationPub publisher.Publisher
	creditFaultPub       publisher.Publisher

	retryer retry.Retryer

	common service

	Topup   *topup
	Balance *balance
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	verifier slip2go.Verifier,
	topupNotificationPub publisher.Publisher,
	creditFaultPub publisher.Publisher,
	retryer retry.Retryer,
) *Services {
	srv := &Services{
		conf:                 conf,
		sqlRepo:              sqlRepo,
		cacheRepo:            cacheRepo,
		verifier:             verifier,
		topupNotificationPub: topupNotificationPub,
		creditFaultPub:       creditFaultPub,
		retryer:              retryer,
	}
	srv.common.srv = srv
	srv.Topup = (*topup)(&srv.common)
	srv.Balance = (*balance)(&srv.common)

	return srv
}
