package middleware

import (
	"github.com/labstack/echo/v4"

	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
)

// Context propagates the request id as correlation id so every log line
// from the request carries it.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			ctx := xlog.SetCorrelationID(req.Context(), rid)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
