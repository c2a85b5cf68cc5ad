package middleware

import (
	"github.com/kasetpay/go-slip-topup/internal/config"
)

type AppMiddleware struct {
	conf config.Config
}

func NewMiddleware(conf config.Config) AppMiddleware {
	return AppMiddleware{
		conf: conf,
	}
}
