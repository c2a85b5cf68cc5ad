package monitoring

import (
	"time"

	xlog "github.com/kasetpay/go-slip-topup/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerClient:     "[CLIENT]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err       error
	logFields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishLogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.logFields = fields
	}
}

func (m *Monitor) Finish(opts ...FinishOption) {
	fOpts := &finishOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	fOpts.logFields = append(fOpts.logFields,
		xlog.Duration("processDuration", time.Since(m.start)),
		xlog.String("segment", m.segmentName))

	if fOpts.err != nil {
		fOpts.logFields = append(
			fOpts.logFields,
			xlog.String("status", "error"),
			xlog.Err(fOpts.err))

		xlog.Warn(m.ctx, messagePrefix[m.layer], fOpts.logFields...)
	} else {
		// only log info from delivery & service layer to avoid duplicate log
		if m.layer == LayerDelivery || m.layer == LayerService {
			fOpts.logFields = append(
				fOpts.logFields,
				xlog.String("status", "success"))

			xlog.Info(m.ctx, messagePrefix[m.layer], fOpts.logFields...)
		}
	}

	if m.segment != nil {
		m.segment.End()
	}
}
