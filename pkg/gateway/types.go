package gateway

import (
	"encoding/json"

	"github.com/ojo-network/contractMonitor/pkg/client"
)

// staticPaginationTotal is reported for every balance response: exactly one
// denom is ever queried.
const staticPaginationTotal = "1"

// BalanceResponse mirrors the cosmos bank AllBalances response body.
type BalanceResponse struct {
	Balances   []client.Coin `json:"balances"`
	Pagination Pagination    `json:"pagination"`
}

// Pagination is a static single-page stub; NextKey is always null.
type Pagination struct {
	NextKey *string `json:"next_key"`
	Total   string  `json:"total"`
}

// SmartQueryResponse is the envelope returned by the smart query route.
type SmartQueryResponse struct {
	Data SmartQueryData `json:"data"`
}

// SmartQueryData carries the request_id field of the contract's answer,
// verbatim. It is omitted when the contract did not return one.
type SmartQueryData struct {
	RequestID json.RawMessage `json:"request_id,omitempty"`
}

func newBalanceResponse(coin *client.Coin) *BalanceResponse {
	return &BalanceResponse{
		Balances: []client.Coin{*coin},
		Pagination: Pagination{
			NextKey: nil,
			Total:   staticPaginationTotal,
		},
	}
}
