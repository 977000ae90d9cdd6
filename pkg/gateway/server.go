package gateway

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"cosmossdk.io/depinject"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	middlewarestd "github.com/slok/go-http-metrics/middleware/std"

	"github.com/ojo-network/contractMonitor/pkg/client"
	"github.com/ojo-network/contractMonitor/pkg/polylog"
)

const (
	routeBalance    = "balances"
	routeSmartQuery = "smart_query"

	userAddressParam     = "userAddress"
	contractAddressParam = "contractAddress"
	requestParam         = "request"

	balancePath    = "/cosmos/bank/v1beta1/balances/{" + userAddressParam + "}"
	smartQueryPath = "/cosmwasm/wasm/v1/contract/{" + contractAddressParam + "}/smart/{" + requestParam + "}"

	// shutdownTimeout bounds how long in-flight requests may take to drain
	// once the gateway is asked to stop.
	shutdownTimeout = 10 * time.Second
)

type gatewayServerOption func(*gatewayServer)

// gatewayServer answers balance and smart query requests by querying the
// chain node through a client.ChainQueryClient. It holds no per-request state.
type gatewayServer struct {
	logger polylog.Logger

	// chainClient is the single shared, read-only handle to the chain node.
	chainClient client.ChainQueryClient

	// listenAddress is the host:port the HTTP server binds to.
	listenAddress string

	// codeHash is sent alongside every smart query.
	codeHash string

	router chi.Router
	server *http.Server
}

// NewGatewayServer creates a new gatewayServer instance with the given dependencies.
//
// Required dependencies:
// - polylog.Logger
// - client.ChainQueryClient
func NewGatewayServer(
	deps depinject.Config,
	opts ...gatewayServerOption,
) (*gatewayServer, error) {
	gw := &gatewayServer{}

	if err := depinject.Inject(
		deps,
		&gw.logger,
		&gw.chainClient,
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(gw)
	}

	if err := gw.validateConfig(); err != nil {
		return nil, err
	}

	gw.router = gw.newRouter()
	gw.server = &http.Server{
		Addr:              gw.listenAddress,
		Handler:           gw.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return gw, nil
}

// Start binds the listen address, logs the startup line and serves requests
// until ctx is done, at which point in-flight requests are drained.
func (gw *gatewayServer) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", gw.listenAddress)
	if err != nil {
		return err
	}

	// Shutdown the HTTP server when the context is done.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := gw.server.Shutdown(shutdownCtx); err != nil {
			gw.logger.Warn().Err(err).Msg("gateway shutdown did not complete cleanly")
		}
	}()

	gw.logger.Info().Msgf("Server running on %s", listenURL(listener.Addr()))

	if err := gw.server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop gracefully stops the gateway, waiting for in-flight requests to finish.
func (gw *gatewayServer) Stop(ctx context.Context) error {
	return gw.server.Shutdown(ctx)
}

// ServeHTTP dispatches the request to the gateway routes.
func (gw *gatewayServer) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	gw.router.ServeHTTP(writer, request)
}

// ServeMetrics exposes the prometheus metrics on the given address and blocks
// until ctx is done.
func (gw *gatewayServer) ServeMetrics(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		gw.logger.Error().Err(err).Msg("failed to listen on address for metrics")
		return err
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		gw.logger.Info().Str("endpoint", addr).Msg("stopping metrics endpoint")
		_ = server.Shutdown(context.Background())
	}()

	gw.logger.Info().Str("endpoint", addr).Msg("serving metrics")
	if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		gw.logger.Error().Err(err).Msg("metrics server failed")
		return err
	}

	return nil
}

// newRouter registers the gateway routes. Only GET is routed; chi answers
// unknown paths with 404 and other methods with 405.
func (gw *gatewayServer) newRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Method(
		http.MethodGet,
		balancePath,
		middlewarestd.Handler(routeBalance, httpMetricsMiddleware, http.HandlerFunc(gw.handleBalance)),
	)
	router.Method(
		http.MethodGet,
		smartQueryPath,
		middlewarestd.Handler(routeSmartQuery, httpMetricsMiddleware, http.HandlerFunc(gw.handleSmartQuery)),
	)

	return router
}

// validateConfig validates the gatewayServer configuration.
func (gw *gatewayServer) validateConfig() error {
	if gw.listenAddress == "" {
		return ErrGatewayMissingListenAddress
	}
	if gw.codeHash == "" {
		return ErrGatewayMissingCodeHash
	}
	return nil
}

// listenURL renders addr as the URL clients reach the gateway at, using
// localhost for wildcard binds.
func listenURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}

	if ip := net.ParseIP(host); ip == nil || ip.IsUnspecified() {
		host = "localhost"
	}

	return "http://" + net.JoinHostPort(host, port)
}
