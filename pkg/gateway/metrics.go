package gateway

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
	httpmetrics "github.com/slok/go-http-metrics/metrics/prometheus"
	metricsmiddleware "github.com/slok/go-http-metrics/middleware"
)

const (
	gatewaySubsystem = "gateway"

	requestsTotal       = "requests_total"
	requestsErrorsTotal = "requests_errors_total"

	errorKindDecode   = "decode"
	errorKindUpstream = "upstream"
	errorKindEncode   = "encode"
)

var (
	// requestsTotalCounter counts every request dispatched to a gateway route,
	// labeled by 'route'.
	//
	// Usage:
	// - Monitor request rates per route.
	requestsTotalCounter metrics.Counter = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Subsystem: gatewaySubsystem,
		Name:      requestsTotal,
		Help:      "Total number of requests handled, labeled by route.",
	}, []string{"route"})

	// requestsErrorsTotalCounter counts requests answered with an error,
	// labeled by 'route' and 'kind' (decode, upstream or encode).
	//
	// Usage:
	// - Tell malformed client requests apart from node failures, which the
	//   HTTP status alone does not.
	requestsErrorsTotalCounter metrics.Counter = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Subsystem: gatewaySubsystem,
		Name:      requestsErrorsTotal,
		Help:      "Total number of requests answered with an error, labeled by route and error kind.",
	}, []string{"route", "kind"})

	// httpMetricsMiddleware hooks https://github.com/slok/go-http-metrics to
	// the gateway routes. It registers its collectors once, on the default
	// prometheus registry.
	httpMetricsMiddleware = metricsmiddleware.New(metricsmiddleware.Config{
		Recorder: httpmetrics.NewRecorder(httpmetrics.Config{}),
	})
)
