package cmd

import (
	"context"
	"fmt"
	"net"
	"os"

	"cosmossdk.io/depinject"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ojo-network/contractMonitor/app/volatile"
	"github.com/ojo-network/contractMonitor/cmd/flags"
	"github.com/ojo-network/contractMonitor/cmd/signals"
	"github.com/ojo-network/contractMonitor/pkg/deps/config"
	"github.com/ojo-network/contractMonitor/pkg/gateway"
	gatewayconfig "github.com/ojo-network/contractMonitor/pkg/gateway/config"
	"github.com/ojo-network/contractMonitor/pkg/polylog"
	"github.com/ojo-network/contractMonitor/pkg/polylog/polyzero"
)

var (
	// flagLogLevel is the variable to set a log level.
	flagLogLevel string
	// flagListenAddress is the host:port the gateway HTTP server binds to.
	flagListenAddress string
	// flagMetricsAddr is the host:port the prometheus metrics are exposed on.
	flagMetricsAddr string
)

// GatewayCmd returns the Cobra command for running the gateway.
func GatewayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gatewayd [config-file]",
		Short: "Starts the REST gateway in front of a Secret Network node",
		Long: `Starts an HTTP gateway exposing two read-only routes backed by a Secret Network node:

  GET /cosmos/bank/v1beta1/balances/{userAddress}
  GET /cosmwasm/wasm/v1/contract/{contractAddress}/smart/{request}

The only argument is the path to a JSON config file:

  {
    "url": "https://lcd.secret.example.com",
    "chain_id": "secret-4",
    "code_hash": "<contract code hash>",
    "grpc_url": "grpc.secret.example.com:9090",
    "grpc_insecure": false,
    "query_timeout": "10s"
  }

url, chain_id and code_hash are required. When grpc_url is set, balances are
queried over gRPC instead of the LCD endpoint. Environment variables are not
consulted.`,
		Example: `gatewayd ./gateway_config.json
gatewayd ./gateway_config.json --listen-address 127.0.0.1:3000 --metrics-addr :9090`,
		Args:          cobra.ExactArgs(1),
		RunE:          runGateway,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagLogLevel, flags.FlagLogLevel, flags.DefaultLogLevel, flags.FlagLogLevelUsage)
	cmd.Flags().StringVar(&flagListenAddress, flags.FlagListenAddress, volatile.DefaultListenAddress, flags.FlagListenAddressUsage)
	cmd.Flags().StringVar(&flagMetricsAddr, flags.FlagMetricsAddr, flags.DefaultMetricsAddr, flags.FlagMetricsAddrUsage)

	return cmd
}

func runGateway(cmd *cobra.Command, args []string) error {
	// Create a context that is canceled when the command is interrupted
	ctx, cancelCtx := context.WithCancel(cmd.Context())
	defer cancelCtx()

	if _, _, err := net.SplitHostPort(flagListenAddress); err != nil {
		return flags.ErrFlagInvalidValue.Wrapf("--%s %q: %s", flags.FlagListenAddress, flagListenAddress, err)
	}

	gatewayConfig, err := gatewayconfig.LoadGatewayConfig(args[0])
	if err != nil {
		return err
	}

	loggerOpts := []polylog.LoggerOption{
		polyzero.WithLevel(polyzero.ParseLevel(flagLogLevel)),
		polyzero.WithOutput(os.Stderr),
	}

	// Construct a logger and associate it with the command context.
	logger := polyzero.NewLogger(loggerOpts...).With("chain_id", gatewayConfig.ChainID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	// Handle interrupt and kill signals asynchronously.
	signals.GoOnExitSignal(logger, cancelCtx)

	gatewayDeps, err := setupGatewayDependencies(ctx, cmd, gatewayConfig)
	if err != nil {
		return fmt.Errorf("failed to setup gateway dependencies: %w", err)
	}

	gatewayServer, err := gateway.NewGatewayServer(
		gatewayDeps,
		gateway.WithListenAddress(flagListenAddress),
		gateway.WithCodeHash(gatewayConfig.CodeHash),
	)
	if err != nil {
		return fmt.Errorf("failed to create gateway: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return gatewayServer.Start(groupCtx)
	})

	if flagMetricsAddr != "" {
		group.Go(func() error {
			return gatewayServer.ServeMetrics(groupCtx, flagMetricsAddr)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("gateway stopped: %w", err)
	}

	logger.Info().Msg("Gateway stopped")
	return nil
}

func setupGatewayDependencies(
	ctx context.Context,
	cmd *cobra.Command,
	gatewayConfig *gatewayconfig.GatewayConfig,
) (depinject.Config, error) {
	supplierFuncs := []config.SupplierFn{
		config.NewSupplyLoggerFromCtx(ctx),
	}

	if gatewayConfig.GRPCURL != "" {
		supplierFuncs = append(supplierFuncs,
			config.NewSupplyGRPCClientConnFn(gatewayConfig.GRPCURL, gatewayConfig.GRPCInsecure),
			config.NewSupplyBankQuerierFn(),
		)
	}

	supplierFuncs = append(supplierFuncs, config.NewSupplyChainQuerierFn(gatewayConfig))

	return config.SupplyConfig(ctx, cmd, supplierFuncs)
}
