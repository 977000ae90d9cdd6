package config

import (
	"context"
	"crypto/tls"

	"cosmossdk.io/depinject"
	"github.com/spf13/cobra"
	googlegrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ojo-network/contractMonitor/pkg/client"
	"github.com/ojo-network/contractMonitor/pkg/client/query"
	gatewayconfig "github.com/ojo-network/contractMonitor/pkg/gateway/config"
	"github.com/ojo-network/contractMonitor/pkg/polylog"
)

// SupplierFn is a function that is used to supply a depinject config.
type SupplierFn func(
	context.Context,
	depinject.Config,
	*cobra.Command,
) (depinject.Config, error)

// SupplyConfig supplies a depinject config by calling each of the supplied
// supplier functions in order and passing the result of each supplier to the
// next supplier, chaining them together.
func SupplyConfig(
	ctx context.Context,
	cmd *cobra.Command,
	suppliers []SupplierFn,
) (deps depinject.Config, err error) {
	// Initialize deps to with empty depinject config.
	deps = depinject.Configs()
	for _, supplyFn := range suppliers {
		deps, err = supplyFn(ctx, deps, cmd)
		if err != nil {
			return nil, err
		}
	}
	return deps, nil
}

// NewSupplyLoggerFromCtx supplies a depinject config with a polylog.Logger instance
// populated from the given context.
func NewSupplyLoggerFromCtx(ctx context.Context) SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		return depinject.Configs(deps, depinject.Supply(polylog.Ctx(ctx))), nil
	}
}

// NewSupplyGRPCClientConnFn supplies a depinject config with a metered gRPC
// client connection to the node at grpcAddr. The connection is closed once
// ctx is done.
func NewSupplyGRPCClientConnFn(grpcAddr string, insecureConn bool) SupplierFn {
	return func(
		ctx context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		creds := credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
		if insecureConn {
			creds = insecure.NewCredentials()
		}

		// NewClient does not dial: the first query establishes the connection.
		conn, err := googlegrpc.NewClient(grpcAddr, googlegrpc.WithTransportCredentials(creds))
		if err != nil {
			return nil, err
		}

		go func() {
			<-ctx.Done()
			_ = conn.Close()
		}()

		return depinject.Configs(deps, depinject.Supply(query.NewGRPCClientWithMetrics(conn))), nil
	}
}

// NewSupplyBankQuerierFn supplies a depinject config with a gRPC BankQuerier.
//
// Requires a grpc.ClientConn to be supplied to the deps.
func NewSupplyBankQuerierFn() SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		// Create the bank querier.
		bankQuerier, err := query.NewBankQuerier(deps)
		if err != nil {
			return nil, err
		}

		// Supply the bank querier to the provided deps
		return depinject.Configs(deps, depinject.Supply(bankQuerier)), nil
	}
}

// NewSupplyChainQuerierFn supplies a depinject config with the
// client.ChainQueryClient used by the gateway. Contract queries always go
// through the node's LCD endpoint. Balance queries use the gRPC BankQuerier
// when a gRPC URL is configured, and the LCD endpoint otherwise.
//
// Requires a polylog.Logger, and a client.BankQueryClient when gatewayConfig
// carries a gRPC URL, to be supplied to the deps.
func NewSupplyChainQuerierFn(gatewayConfig *gatewayconfig.GatewayConfig) SupplierFn {
	return func(
		_ context.Context,
		deps depinject.Config,
		_ *cobra.Command,
	) (depinject.Config, error) {
		var logger polylog.Logger
		if err := depinject.Inject(deps, &logger); err != nil {
			return nil, err
		}

		lcdQuerier := query.NewLCDQuerier(gatewayConfig.NodeURL)

		var bankClient client.BankQueryClient = lcdQuerier
		if gatewayConfig.GRPCURL != "" {
			if err := depinject.Inject(deps, &bankClient); err != nil {
				return nil, err
			}
		}

		chainQuerier := query.NewChainQuerier(
			logger,
			bankClient,
			lcdQuerier,
			query.WithQueryTimeout(gatewayConfig.QueryTimeout),
		)

		return depinject.Configs(deps, depinject.Supply(chainQuerier)), nil
	}
}
