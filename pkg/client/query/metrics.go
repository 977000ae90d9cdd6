package query

import (
	"time"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	chainQueryProcess = "chain_query"

	queriesTotal           = "queries_total"
	queriesErrorsTotal     = "queries_errors_total"
	queriesTimeoutsTotal   = "queries_timeouts_total"
	grpcCallDurationSecond = "grpc_call_duration_seconds"
)

var (
	// QueriesTotal counts every query sent upstream, labeled by query kind
	// ("balance" or "contract").
	QueriesTotal = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Subsystem: chainQueryProcess,
		Name:      queriesTotal,
		Help:      "Total number of upstream queries, labeled by query kind.",
	}, []string{"query"})

	// QueriesErrorsTotal counts failed upstream queries, labeled by query kind.
	QueriesErrorsTotal = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Subsystem: chainQueryProcess,
		Name:      queriesErrorsTotal,
		Help:      "Total number of failed upstream queries, labeled by query kind.",
	}, []string{"query"})

	// QueriesTimeoutsTotal counts upstream queries aborted by the query timeout.
	QueriesTimeoutsTotal = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Subsystem: chainQueryProcess,
		Name:      queriesTimeoutsTotal,
		Help:      "Total number of upstream queries which exceeded the query timeout.",
	}, []string{"query"})

	// GRPCCallDurationSeconds observes gRPC call durations against the node,
	// labeled by the full gRPC method name.
	//
	// Buckets:
	// - 5ms to 10s, covering a local node up to a congested remote one.
	GRPCCallDurationSeconds = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Subsystem: chainQueryProcess,
		Name:      grpcCallDurationSecond,
		Help:      "Histogram of gRPC call durations against the chain node.",
		Buckets:   []float64{0.005, 0.025, 0.1, 0.5, 1, 2.5, 10},
	}, []string{"method"})
)

// CaptureGRPCCallDuration records the time elapsed since startTime for the
// given gRPC method.
func CaptureGRPCCallDuration(method string, startTime time.Time) {
	GRPCCallDurationSeconds.
		With("method", method).
		Observe(time.Since(startTime).Seconds())
}
