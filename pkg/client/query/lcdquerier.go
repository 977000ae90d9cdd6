package query

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/ojo-network/contractMonitor/pkg/client"
)

// maxResponseBodySize caps the amount of data read from a single node response.
const maxResponseBodySize = 10 << 20

var (
	_ client.BankQueryClient    = (*LCDQuerier)(nil)
	_ client.ComputeQueryClient = (*LCDQuerier)(nil)
)

// LCDQuerierOption configures an LCDQuerier.
type LCDQuerierOption func(*LCDQuerier)

// LCDQuerier queries a node through its REST (LCD) interface. It serves both
// bank balance and compute contract queries.
type LCDQuerier struct {
	nodeURL    *url.URL
	httpClient *http.Client
}

// lcdBalanceResponse is the body of GET /cosmos/bank/v1beta1/balances/{address}/by_denom.
type lcdBalanceResponse struct {
	Balance *client.Coin `json:"balance"`
}

// lcdContractResponse is the body of GET /compute/v1beta1/query/{contract}.
type lcdContractResponse struct {
	Data json.RawMessage `json:"data"`
}

// lcdErrorResponse is the body the node returns alongside a non-2xx status.
type lcdErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WithHTTPClient sets the http.Client used to reach the node.
func WithHTTPClient(httpClient *http.Client) LCDQuerierOption {
	return func(lq *LCDQuerier) {
		lq.httpClient = httpClient
	}
}

// NewLCDQuerier returns an LCDQuerier targeting the given node base URL.
func NewLCDQuerier(nodeURL *url.URL, opts ...LCDQuerierOption) *LCDQuerier {
	lq := &LCDQuerier{
		nodeURL:    nodeURL,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(lq)
	}

	return lq
}

// GetBalance returns the balance of the given address in the given denom.
func (lq *LCDQuerier) GetBalance(
	ctx context.Context,
	address string,
	denom string,
) (*client.Coin, error) {
	endpoint := lq.nodeURL.JoinPath(
		"cosmos", "bank", "v1beta1", "balances",
		url.PathEscape(address),
		"by_denom",
	)
	endpoint.RawQuery = url.Values{"denom": []string{denom}}.Encode()

	res := new(lcdBalanceResponse)
	if err := lq.get(ctx, endpoint, ErrQueryBalance, res); err != nil {
		return nil, err
	}

	if res.Balance == nil {
		return nil, ErrQueryUnexpectedResponse.Wrapf("no balance returned for address %s", address)
	}
	if _, ok := math.NewIntFromString(res.Balance.Amount); !ok {
		return nil, ErrQueryUnexpectedResponse.Wrapf("invalid balance amount %q", res.Balance.Amount)
	}
	if res.Balance.Denom == "" {
		return nil, ErrQueryUnexpectedResponse.Wrap("balance is missing its denom")
	}

	return res.Balance, nil
}

// QueryContract performs a read-only smart query against the given contract.
// The query sent to the node is the base64 encoding of the contract code hash
// followed by the compact JSON query message.
func (lq *LCDQuerier) QueryContract(
	ctx context.Context,
	contractAddress string,
	codeHash string,
	queryMsg json.RawMessage,
) (json.RawMessage, error) {
	compactMsg := new(bytes.Buffer)
	if err := json.Compact(compactMsg, queryMsg); err != nil {
		return nil, ErrQueryContract.Wrapf("invalid query message: %s", err)
	}

	endpoint := lq.nodeURL.JoinPath(
		"compute", "v1beta1", "query",
		url.PathEscape(contractAddress),
	)
	query := append([]byte(codeHash), compactMsg.Bytes()...)
	endpoint.RawQuery = url.Values{
		"query": []string{base64.StdEncoding.EncodeToString(query)},
	}.Encode()

	res := new(lcdContractResponse)
	if err := lq.get(ctx, endpoint, ErrQueryContract, res); err != nil {
		return nil, err
	}

	return decodeContractData(res.Data)
}

// get performs a GET request against endpoint and decodes the JSON response
// into res. Transport failures and non-2xx statuses are wrapped with failureErr.
func (lq *LCDQuerier) get(
	ctx context.Context,
	endpoint *url.URL,
	failureErr *sdkerrors.Error,
	res any,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return failureErr.Wrapf("building request: %s", err)
	}
	req.Header.Set("Accept", "application/json")

	httpRes, err := lq.httpClient.Do(req)
	if err != nil {
		return failureErr.Wrap(err.Error())
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpRes.Body, maxResponseBodySize))
	if err != nil {
		return failureErr.Wrapf("reading response: %s", err)
	}

	if httpRes.StatusCode < http.StatusOK || httpRes.StatusCode >= http.StatusMultipleChoices {
		return failureErr.Wrapf("node responded with status %d: %s", httpRes.StatusCode, nodeErrorMessage(body))
	}

	if err := json.Unmarshal(body, res); err != nil {
		return ErrQueryUnexpectedResponse.Wrapf("decoding response: %s", err)
	}

	return nil
}

// nodeErrorMessage extracts the "message" field of a node error body, falling
// back to the raw body.
func nodeErrorMessage(body []byte) string {
	errRes := new(lcdErrorResponse)
	if err := json.Unmarshal(body, errRes); err == nil && errRes.Message != "" {
		return errRes.Message
	}

	return strings.TrimSpace(string(body))
}

// decodeContractData returns the JSON result of a contract query. The node
// returns it either as a base64 encoded JSON string or as inline JSON.
func decodeContractData(data json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrQueryUnexpectedResponse.Wrap("contract query returned no data")
	}

	if trimmed[0] != '"' {
		return json.RawMessage(trimmed), nil
	}

	var encoded string
	if err := json.Unmarshal(trimmed, &encoded); err != nil {
		return nil, ErrQueryUnexpectedResponse.Wrapf("decoding contract data: %s", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrQueryUnexpectedResponse.Wrapf("decoding contract data: %s", err)
	}

	if !json.Valid(decoded) {
		return nil, ErrQueryUnexpectedResponse.Wrapf("contract data is not JSON: %q", decoded)
	}

	return decoded, nil
}
