package http

import (
	"errors"
	nethttp "net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"

	"github.com/kasetpay/go-slip-topup/internal/common"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestRejectionResponseModel struct {
		Status     string `json:"status" example:"rejected"`
		ReasonCode string `json:"reasonCode" example:"receiver-mismatch"`
		Message    string `json:"message"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = echoErr.Message.(string)
	}

	return c.JSON(statusCode, res)
}

// RestRejectionResponse reports a policy rejection. The message is the
// localized text shown to the submitter; the reason code is stable for
// clients and dashboards.
func RestRejectionResponse(c echo.Context, reasonCode, message string) error {
	return c.JSON(nethttp.StatusUnprocessableEntity, RestRejectionResponseModel{
		Status:     "rejected",
		ReasonCode: reasonCode,
		Message:    message,
	})
}

func RestErrorValidationResponse(c echo.Context, errs interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errs.(*multierror.Error); ok {
		res.Errors = data.Errors
	} else {
		res.Errors = errs
	}

	return c.JSON(nethttp.StatusUnprocessableEntity, res)
}
