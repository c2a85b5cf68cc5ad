package httpclient

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
)

type RequestWrapper struct {
	client      *resty.Client
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

// DoRequest sends one request through the shared resty client. Transport
// failures come back as errors; non-2xx responses are returned to the
// caller untouched and only logged here.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, url string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	logFields := []xlog.Field{
		xlog.String("service", w.serviceName),
		xlog.String("url", url),
		xlog.String("method", method),
	}

	req := w.client.R().SetContext(ctx)
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case "GET":
		httpRes, err = req.Get(url)
	case "POST":
		httpRes, err = req.Post(url)
	case "PUT":
		httpRes, err = req.Put(url)
	case "DELETE":
		httpRes, err = req.Delete(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	logFields = append(logFields, xlog.String("httpStatusCode", httpRes.Status()))

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.Any("httpResponse", httpRes.Body()))...)
	} else {
		xlog.Info(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}
