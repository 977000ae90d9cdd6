package query

import (
	"context"

	"cosmossdk.io/depinject"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	grpc "github.com/cosmos/gogoproto/grpc"
	googlegrpc "google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/ojo-network/contractMonitor/pkg/client"
)

var _ client.BankQueryClient = (*bankQuerier)(nil)

// bankGRPCQueryClient is the subset of banktypes.QueryClient used by bankQuerier.
type bankGRPCQueryClient interface {
	Balance(
		ctx context.Context,
		in *banktypes.QueryBalanceRequest,
		opts ...googlegrpc.CallOption,
	) (*banktypes.QueryBalanceResponse, error)
}

// bankQuerier is a wrapper around the banktypes.QueryClient that enables the
// querying of onchain balance information over gRPC.
type bankQuerier struct {
	clientConn  grpc.ClientConn
	bankQuerier bankGRPCQueryClient
}

// NewBankQuerier returns a new instance of a client.BankQueryClient by
// injecting the dependecies provided by the depinject.Config.
//
// Required dependencies:
// - grpc.ClientConn
func NewBankQuerier(deps depinject.Config) (client.BankQueryClient, error) {
	bq := &bankQuerier{}

	if err := depinject.Inject(
		deps,
		&bq.clientConn,
	); err != nil {
		return nil, err
	}

	bq.bankQuerier = banktypes.NewQueryClient(bq.clientConn)

	return bq, nil
}

// GetBalance returns the balance of the given address in the given denom.
func (bq *bankQuerier) GetBalance(
	ctx context.Context,
	address string,
	denom string,
) (*client.Coin, error) {
	req := &banktypes.QueryBalanceRequest{Address: address, Denom: denom}
	res, err := bq.bankQuerier.Balance(ctx, req)
	if err != nil {
		return nil, ErrQueryBalance.Wrapf("address: %s [%s]", address, status.Convert(err).Message())
	}

	if res.GetBalance() == nil || res.Balance.Amount.IsNil() {
		return nil, ErrQueryUnexpectedResponse.Wrapf("no balance returned for address %s", address)
	}

	return &client.Coin{
		Amount: res.Balance.Amount.String(),
		Denom:  res.Balance.Denom,
	}, nil
}
