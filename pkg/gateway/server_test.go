package gateway_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cosmossdk.io/depinject"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ojo-network/contractMonitor/internal/mocks/mockclient"
	"github.com/ojo-network/contractMonitor/pkg/client"
	"github.com/ojo-network/contractMonitor/pkg/client/query"
	"github.com/ojo-network/contractMonitor/pkg/gateway"
	"github.com/ojo-network/contractMonitor/pkg/polylog"
	"github.com/ojo-network/contractMonitor/testutil/testpolylog"
)

const (
	testAddress  = "secret1ap26qrlp8mcq2pg6r47w43l0y8zkqm8a450s03"
	testContract = "secret1k0jntykt7e4g3y88ltc60czgjuqdy4c9e8fzek"
	testCodeHash = "0bbaa17a6bd4533f5dc3eae14bfd1152891edaabcc0d767f611bb70437b3a159"

	balanceRoute = "/cosmos/bank/v1beta1/balances/"
)

type gatewayHandler interface {
	ServeHTTP(http.ResponseWriter, *http.Request)
}

func newTestGateway(
	t *testing.T,
	logger polylog.Logger,
	chainClient client.ChainQueryClient,
) gatewayHandler {
	t.Helper()

	deps := depinject.Supply(logger, chainClient)
	gw, err := gateway.NewGatewayServer(
		deps,
		gateway.WithListenAddress("127.0.0.1:0"),
		gateway.WithCodeHash(testCodeHash),
	)
	require.NoError(t, err)

	return gw
}

func smartQueryRoute(contract, request string) string {
	return "/cosmwasm/wasm/v1/contract/" + contract + "/smart/" + request
}

func doGet(t *testing.T, gw gatewayHandler, target string) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	gw.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestGateway_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, _ := testpolylog.NewBufferedLogger()

	chainClient := mockclient.NewMockChainQueryClient(ctrl)
	chainClient.EXPECT().
		QueryBalance(gomock.Any(), testAddress, "uscrt").
		Return(&client.Coin{Amount: "100", Denom: "uscrt"}, nil).
		Times(1)

	gw := newTestGateway(t, logger, chainClient)

	res := doGet(t, gw, balanceRoute+testAddress)
	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, "application/json; charset=utf-8", res.Header().Get("Content-Type"))
	require.Equal(t,
		`{"balances":[{"amount":"100","denom":"uscrt"}],"pagination":{"next_key":null,"total":"1"}}`,
		res.Body.String(),
	)
}

func TestGateway_Balance_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, _ := testpolylog.NewBufferedLogger()

	chainClient := mockclient.NewMockChainQueryClient(ctrl)
	chainClient.EXPECT().
		QueryBalance(gomock.Any(), testAddress, "uscrt").
		Return(&client.Coin{Amount: "42", Denom: "uscrt"}, nil).
		Times(2)

	gw := newTestGateway(t, logger, chainClient)

	first := doGet(t, gw, balanceRoute+testAddress)
	second := doGet(t, gw, balanceRoute+testAddress)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, first.Code, second.Code)
	require.Equal(t, first.Body.String(), second.Body.String())
}

func TestGateway_Balance_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, logBuf := testpolylog.NewBufferedLogger()

	chainClient := mockclient.NewMockChainQueryClient(ctrl)
	chainClient.EXPECT().
		QueryBalance(gomock.Any(), testAddress, "uscrt").
		Return(nil, query.ErrQueryBalance.Wrap("dial tcp 127.0.0.1:1317: connect: connection refused")).
		Times(1)

	gw := newTestGateway(t, logger, chainClient)

	res := doGet(t, gw, balanceRoute+testAddress)
	require.Equal(t, http.StatusInternalServerError, res.Code)
	require.Equal(t, "text/plain; charset=utf-8", res.Header().Get("Content-Type"))

	body := res.Body.String()
	require.NotEmpty(t, body)
	require.Contains(t, body, "connection refused")
	require.False(t, json.Valid(res.Body.Bytes()), "no partial JSON may be emitted")

	require.Contains(t, logBuf.String(), `"route":"balances"`)
	require.Contains(t, logBuf.String(), `"kind":"upstream"`)
}

func TestGateway_SmartQuery(t *testing.T) {
	queryMsg := `{"get_count":{}}`
	encodedQuery := base64.StdEncoding.EncodeToString([]byte(queryMsg))

	tests := []struct {
		desc           string
		upstreamResult string
		expectedBody   string
	}{
		{
			desc:           "only request_id surfaces",
			upstreamResult: `{"request_id":"abc123","count":7,"owner":"secret1xyz"}`,
			expectedBody:   `{"data":{"request_id":"abc123"}}`,
		},
		{
			desc:           "non-string request_id is echoed verbatim",
			upstreamResult: `{"request_id":{"id":5}}`,
			expectedBody:   `{"data":{"request_id":{"id":5}}}`,
		},
		{
			desc:           "null request_id is echoed",
			upstreamResult: `{"request_id":null}`,
			expectedBody:   `{"data":{"request_id":null}}`,
		},
		{
			desc:           "missing request_id",
			upstreamResult: `{"count":7}`,
			expectedBody:   `{"data":{}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			logger, _ := testpolylog.NewBufferedLogger()

			chainClient := mockclient.NewMockChainQueryClient(ctrl)
			chainClient.EXPECT().
				QueryContract(gomock.Any(), testContract, testCodeHash, json.RawMessage(queryMsg)).
				Return(json.RawMessage(test.upstreamResult), nil).
				Times(1)

			gw := newTestGateway(t, logger, chainClient)

			res := doGet(t, gw, smartQueryRoute(testContract, encodedQuery))
			require.Equal(t, http.StatusOK, res.Code)
			require.Equal(t, "application/json; charset=utf-8", res.Header().Get("Content-Type"))
			require.Equal(t, test.expectedBody, res.Body.String())
		})
	}
}

func TestGateway_SmartQuery_RequestEncodings(t *testing.T) {
	// The standard encoding of this message contains both '/' and '='.
	queryMsg := `{"q":"???"}`

	tests := []struct {
		desc    string
		request string
	}{
		{
			desc:    "percent-escaped standard encoding",
			request: "eyJxIjoiPz8%2FIn0%3D",
		},
		{
			desc:    "url-safe unpadded encoding",
			request: "eyJxIjoiPz8_In0",
		},
		{
			desc:    "url-safe padded encoding",
			request: "eyJxIjoiPz8_In0=",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			logger, _ := testpolylog.NewBufferedLogger()

			chainClient := mockclient.NewMockChainQueryClient(ctrl)
			chainClient.EXPECT().
				QueryContract(gomock.Any(), testContract, testCodeHash, json.RawMessage(queryMsg)).
				Return(json.RawMessage(`{"request_id":"1"}`), nil).
				Times(1)

			gw := newTestGateway(t, logger, chainClient)

			res := doGet(t, gw, smartQueryRoute(testContract, test.request))
			require.Equal(t, http.StatusOK, res.Code)
			require.Equal(t, `{"data":{"request_id":"1"}}`, res.Body.String())
		})
	}
}

func TestGateway_SmartQuery_DecodeErrors(t *testing.T) {
	tests := []struct {
		desc          string
		request       string
		expectedInErr string
	}{
		{
			desc:          "invalid base64",
			request:       "!!!not*base64!!!",
			expectedInErr: "base64",
		},
		{
			desc:          "invalid UTF-8",
			request:       base64.URLEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}),
			expectedInErr: "UTF-8",
		},
		{
			desc:          "invalid JSON",
			request:       base64.StdEncoding.EncodeToString([]byte("not-json")),
			expectedInErr: "JSON",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			logger, logBuf := testpolylog.NewBufferedLogger()

			// No expectations: the node must not be queried.
			chainClient := mockclient.NewMockChainQueryClient(ctrl)
			gw := newTestGateway(t, logger, chainClient)

			res := doGet(t, gw, smartQueryRoute(testContract, test.request))
			require.Equal(t, http.StatusInternalServerError, res.Code)
			require.Equal(t, "text/plain; charset=utf-8", res.Header().Get("Content-Type"))
			require.Contains(t, res.Body.String(), test.expectedInErr)
			require.Contains(t, res.Body.String(), gateway.ErrGatewayDecodeRequest.Error())
			require.Contains(t, logBuf.String(), `"kind":"decode"`)
		})
	}
}

func TestGateway_SmartQuery_UpstreamErrors(t *testing.T) {
	encodedQuery := base64.StdEncoding.EncodeToString([]byte(`{"get_count":{}}`))

	tests := []struct {
		desc           string
		upstreamResult json.RawMessage
		upstreamErr    error
		expectedInErr  string
	}{
		{
			desc:          "contract query fails",
			upstreamErr:   query.ErrQueryContract.Wrap("node responded with status 500: unknown variant"),
			expectedInErr: "unknown variant",
		},
		{
			desc:           "result is not an object",
			upstreamResult: json.RawMessage(`["abc123"]`),
			expectedInErr:  gateway.ErrGatewayUnexpectedQueryResult.Error(),
		},
		{
			desc:           "result is null",
			upstreamResult: json.RawMessage(`null`),
			expectedInErr:  gateway.ErrGatewayUnexpectedQueryResult.Error(),
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			logger, _ := testpolylog.NewBufferedLogger()

			chainClient := mockclient.NewMockChainQueryClient(ctrl)
			chainClient.EXPECT().
				QueryContract(gomock.Any(), testContract, testCodeHash, gomock.Any()).
				Return(test.upstreamResult, test.upstreamErr).
				Times(1)

			gw := newTestGateway(t, logger, chainClient)

			res := doGet(t, gw, smartQueryRoute(testContract, encodedQuery))
			require.Equal(t, http.StatusInternalServerError, res.Code)
			require.Contains(t, res.Body.String(), gateway.ErrGatewayUpstream.Error())
			require.Contains(t, res.Body.String(), test.expectedInErr)
		})
	}
}

func TestGateway_Routing(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, _ := testpolylog.NewBufferedLogger()
	gw := newTestGateway(t, logger, mockclient.NewMockChainQueryClient(ctrl))

	res := doGet(t, gw, "/cosmos/bank/v1beta1/supply")
	require.Equal(t, http.StatusNotFound, res.Code)

	recorder := httptest.NewRecorder()
	gw.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, balanceRoute+testAddress, nil))
	require.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestNewGatewayServer_InvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, _ := testpolylog.NewBufferedLogger()
	deps := depinject.Supply(logger, mockclient.NewMockChainQueryClient(ctrl))

	_, err := gateway.NewGatewayServer(deps, gateway.WithCodeHash(testCodeHash))
	require.ErrorIs(t, err, gateway.ErrGatewayMissingListenAddress)

	_, err = gateway.NewGatewayServer(deps, gateway.WithListenAddress(":3000"))
	require.ErrorIs(t, err, gateway.ErrGatewayMissingCodeHash)
}

func TestGateway_StartAndShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, logBuf := testpolylog.NewBufferedLogger()

	chainClient := mockclient.NewMockChainQueryClient(ctrl)
	chainClient.EXPECT().
		QueryBalance(gomock.Any(), testAddress, "uscrt").
		Return(&client.Coin{Amount: "1", Denom: "uscrt"}, nil).
		AnyTimes()

	listenAddress := freeListenAddress(t)
	gw, err := gateway.NewGatewayServer(
		depinject.Supply(logger, chainClient),
		gateway.WithListenAddress(listenAddress),
		gateway.WithCodeHash(testCodeHash),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	startErrCh := make(chan error, 1)
	go func() {
		startErrCh <- gw.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		res, err := http.Get("http://" + listenAddress + balanceRoute + testAddress)
		if err != nil {
			return false
		}
		defer res.Body.Close()
		return res.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-startErrCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("gateway did not stop after context cancellation")
	}

	require.Contains(t, logBuf.String(), "Server running on http://"+listenAddress)
}

func TestGateway_Start_ListenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger, _ := testpolylog.NewBufferedLogger()

	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = occupied.Close() })

	gw, err := gateway.NewGatewayServer(
		depinject.Supply(logger, mockclient.NewMockChainQueryClient(ctrl)),
		gateway.WithListenAddress(occupied.Addr().String()),
		gateway.WithCodeHash(testCodeHash),
	)
	require.NoError(t, err)

	err = gw.Start(context.Background())
	require.Error(t, err)

	var opErr *net.OpError
	require.True(t, errors.As(err, &opErr))
}

// freeListenAddress returns a loopback address with a port that was free at
// the time of the call.
func freeListenAddress(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	return addr
}
