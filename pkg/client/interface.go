//go:generate mockgen -destination=../../internal/mocks/mockclient/query_client_mock.go -package=mockclient . BankQueryClient,ComputeQueryClient,ChainQueryClient

package client

import (
	"context"
	"encoding/json"
)

// BankQueryClient queries the bank module of the upstream node.
type BankQueryClient interface {
	// GetBalance returns the balance of address in the given denom. It makes
	// exactly one round trip to the node.
	GetBalance(ctx context.Context, address, denom string) (*Coin, error)
}

// ComputeQueryClient sends read-only smart-contract queries to the compute
// module of the upstream node.
type ComputeQueryClient interface {
	// QueryContract executes queryMsg against the contract at contractAddress,
	// identified by codeHash, and returns the contract's JSON response as-is.
	QueryContract(
		ctx context.Context,
		contractAddress string,
		codeHash string,
		queryMsg json.RawMessage,
	) (json.RawMessage, error)
}

// ChainQueryClient is the capability the gateway handlers depend on: one
// balance query and one smart-contract query, both single-attempt.
type ChainQueryClient interface {
	QueryBalance(ctx context.Context, address, denom string) (*Coin, error)
	QueryContract(
		ctx context.Context,
		contractAddress string,
		codeHash string,
		queryMsg json.RawMessage,
	) (json.RawMessage, error)
}
