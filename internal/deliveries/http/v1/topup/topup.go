package topup

import (
	"errors"
	"io"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/kasetpay/go-slip-topup/internal/common"
	"github.com/kasetpay/go-slip-topup/internal/common/http"
	"github.com/kasetpay/go-slip-topup/internal/models"
	"github.com/kasetpay/go-slip-topup/internal/services"
)

type topupHandler struct {
	topupService services.TopupService
}

// New topup handler will initialize the topups/ resources endpoint
func New(g *echo.Group, topupSrv services.TopupService) {
	th := topupHandler{topupService: topupSrv}
	topups := g.Group("/topups")
	topups.POST("/slip", th.submitSlip())
	topups.GET("", th.getHistory())
}

type (
	DoSubmitSlipResponse struct {
		Status         string         `json:"status" example:"accepted"`
		Message        string         `json:"message"`
		TransactionRef string         `json:"transactionRef"`
		Amount         models.Decimal `json:"amount"`
		SenderName     string         `json:"senderName,omitempty"`
	}

	doGetHistoryRequest struct {
		UserID string `query:"userId" json:"userId" validate:"required"`
		Limit  int    `query:"limit" json:"limit"`
		Offset int    `query:"offset" json:"offset"`
	}

	DoGetHistoryResponse struct {
		Data []models.CreditRecord `json:"data"`
	}
)

func (th topupHandler) submitSlip() echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.FormValue("userId")

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, common.ErrSlipEmpty)
		}

		file, err := fileHeader.Open()
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		defer file.Close()

		image, err := io.ReadAll(file)
		if err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		decision, err := th.topupService.ProcessSlip(c.Request().Context(), models.ProcessSlipRequest{
			UserID:   userID,
			Filename: fileHeader.Filename,
			Image:    image,
		})
		if err != nil {
			switch {
			case errors.Is(err, common.ErrMissingUserID),
				errors.Is(err, common.ErrSlipEmpty),
				errors.Is(err, common.ErrSlipTooLarge):
				return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
			case errors.Is(err, common.ErrCreditingFault):
				return http.RestErrorResponse(c, nethttp.StatusInternalServerError, common.ErrInternalServerError)
			default:
				return http.RestErrorResponse(c, nethttp.StatusInternalServerError, common.ErrInternalServerError)
			}
		}

		switch decision.Status {
		case models.DecisionAccepted:
			result := decision.Result
			return http.RestSuccessResponse(c, nethttp.StatusOK, DoSubmitSlipResponse{
				Status:         string(models.DecisionAccepted),
				Message:        models.MsgTopupSuccess(result.TransactionRef, *result.Amount, result.SenderName),
				TransactionRef: result.TransactionRef,
				Amount:         *result.Amount,
				SenderName:     result.SenderName,
			})
		case models.DecisionRejected:
			return http.RestRejectionResponse(c, decision.ReasonCode, decision.DisplayReason)
		default:
			return http.RestErrorResponse(c, nethttp.StatusBadGateway, errors.New(decision.DisplayReason))
		}
	}
}

func (th topupHandler) getHistory() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req doGetHistoryRequest
		if err := c.Bind(&req); err != nil {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}

		if errs := common.ValidateStruct(req); errs != nil {
			return http.RestErrorValidationResponse(c, errs)
		}

		records, err := th.topupService.GetHistory(c.Request().Context(), models.ListCreditRecordsRequest{
			UserID: req.UserID,
			Limit:  req.Limit,
			Offset: req.Offset,
		})
		if err != nil {
			if errors.Is(err, common.ErrMissingUserID) {
				return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
			}
			return http.RestErrorResponse(c, nethttp.StatusInternalServerError, common.ErrInternalServerError)
		}

		if records == nil {
			records = []models.CreditRecord{}
		}

		return http.RestSuccessResponse(c, nethttp.StatusOK, DoGetHistoryResponse{Data: records})
	}
}
