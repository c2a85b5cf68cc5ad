package health

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/kasetpay/go-slip-topup/internal/common/http"
)

type healthHandler struct{}

// New health handler will initialize the health/ resources endpoint
func New(g *echo.Group) {
	hh := healthHandler{}
	g.GET("/health", hh.healthCheck())
}

type DoHealthCheckLivenessResponse struct {
	Kind   string `json:"kind" example:"health"`
	Status string `json:"status" example:"server is up and running"`
}

func (hh healthHandler) healthCheck() echo.HandlerFunc {
	return func(c echo.Context) error {
		return http.RestSuccessResponse(c, nethttp.StatusOK, DoHealthCheckLivenessResponse{
			Kind:   "health",
			Status: "server is up and running",
		})
	}
}
