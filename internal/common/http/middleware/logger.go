package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"

	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
)

var excludedLogs = []string{
	"/api/health",
	"/metrics",
}

func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			ctx := c.Request().Context()

			fields := []xlog.Field{
				xlog.String("method", req.Method),
				xlog.String("url_path", req.URL.String()),
				xlog.Int("status", res.Status),
				xlog.String("latency", latency.String()),
				xlog.String("content_type", sanitizeContentType(req.Header.Get(echo.HeaderContentType))),
			}

			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)

			switch {
			case res.Status >= 500:
				xlog.Error(ctx, message, fields...)
			case res.Status >= 400:
				xlog.Warn(ctx, message, fields...)
			default:
				xlog.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}

// multipart boundaries are per-request noise, keep only the media type.
func sanitizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		return ct[:i]
	}
	return ct
}
