package query

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ojo-network/contractMonitor/pkg/client"
	"github.com/ojo-network/contractMonitor/pkg/polylog"
)

const (
	queryKindBalance  = "balance"
	queryKindContract = "contract"
)

var _ client.ChainQueryClient = (*chainQuerier)(nil)

// ChainQuerierOption configures a chainQuerier.
type ChainQuerierOption func(*chainQuerier)

// chainQuerier composes a bank and a compute backend into a single
// client.ChainQueryClient and applies the per-query timeout.
type chainQuerier struct {
	logger        polylog.Logger
	bankClient    client.BankQueryClient
	computeClient client.ComputeQueryClient

	// queryTimeout bounds each upstream query. Zero disables it.
	queryTimeout time.Duration
}

// WithQueryTimeout bounds every upstream query by the given duration.
func WithQueryTimeout(timeout time.Duration) ChainQuerierOption {
	return func(cq *chainQuerier) {
		cq.queryTimeout = timeout
	}
}

// NewChainQuerier returns a client.ChainQueryClient which routes balance
// queries to bankClient and contract queries to computeClient.
func NewChainQuerier(
	logger polylog.Logger,
	bankClient client.BankQueryClient,
	computeClient client.ComputeQueryClient,
	opts ...ChainQuerierOption,
) client.ChainQueryClient {
	cq := &chainQuerier{
		logger:        logger,
		bankClient:    bankClient,
		computeClient: computeClient,
	}

	for _, opt := range opts {
		opt(cq)
	}

	return cq
}

// QueryBalance returns the balance of address in denom.
func (cq *chainQuerier) QueryBalance(
	ctx context.Context,
	address string,
	denom string,
) (*client.Coin, error) {
	ctx, cancel := cq.withQueryTimeout(ctx)
	defer cancel()

	QueriesTotal.With("query", queryKindBalance).Add(1)

	coin, err := cq.bankClient.GetBalance(ctx, address, denom)
	if err != nil {
		return nil, cq.queryFailed(ctx, queryKindBalance, err)
	}

	return coin, nil
}

// QueryContract performs a read-only smart query against contractAddress.
func (cq *chainQuerier) QueryContract(
	ctx context.Context,
	contractAddress string,
	codeHash string,
	queryMsg json.RawMessage,
) (json.RawMessage, error) {
	ctx, cancel := cq.withQueryTimeout(ctx)
	defer cancel()

	QueriesTotal.With("query", queryKindContract).Add(1)

	result, err := cq.computeClient.QueryContract(ctx, contractAddress, codeHash, queryMsg)
	if err != nil {
		return nil, cq.queryFailed(ctx, queryKindContract, err)
	}

	return result, nil
}

func (cq *chainQuerier) withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if cq.queryTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, cq.queryTimeout)
}

// queryFailed records the failure and converts deadline expirations into
// ErrQueryTimeout.
func (cq *chainQuerier) queryFailed(ctx context.Context, queryKind string, err error) error {
	QueriesErrorsTotal.With("query", queryKind).Add(1)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		QueriesTimeoutsTotal.With("query", queryKind).Add(1)
		err = ErrQueryTimeout.Wrapf("%s query: %s", queryKind, err)
	}

	cq.logger.Debug().
		Str("query", queryKind).
		Err(err).
		Msg("upstream query failed")

	return err
}
