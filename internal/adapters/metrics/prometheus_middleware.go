package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/starlane-logistics/internal/application/common"
)

// PrometheusMiddleware records duration and success of every mediator request.
// A nil collector disables it.
func PrometheusMiddleware(collector *CommandMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		collector.begin()
		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(common.RequestName(request), time.Since(start).Seconds(), err == nil)

		return response, err
	}
}
