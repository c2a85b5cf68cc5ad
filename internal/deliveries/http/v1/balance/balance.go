package balance

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/kasetpay/go-slip-topup/internal/common"
	"github.com/kasetpay/go-slip-topup/internal/common/http"
	"github.com/kasetpay/go-slip-topup/internal/services"
)

type balanceHandler struct {
	balanceService services.BalanceService
}

// New balance handler will initialize the balances/ resources endpoint
func New(g *echo.Group, balanceSrv services.BalanceService) {
	bh := balanceHandler{balanceService: balanceSrv}
	balances := g.Group("/balances")
	balances.GET("/:userId", bh.getBalance())
}

func (bh balanceHandler) getBalance() echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Param("userId")

		res, err := bh.balanceService.Get(c.Request().Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, common.ErrMissingUserID):
				return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
			case errors.Is(err, common.ErrBalanceNotFound):
				return http.RestErrorResponse(c, nethttp.StatusNotFound, err)
			default:
				return http.RestErrorResponse(c, nethttp.StatusInternalServerError, common.ErrInternalServerError)
			}
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, res)
	}
}
