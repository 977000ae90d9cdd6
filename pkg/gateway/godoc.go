// Package gateway serves the REST gateway in front of the chain node.
//
// Two GET routes are exposed:
//
//	/cosmos/bank/v1beta1/balances/{userAddress}
//	/cosmwasm/wasm/v1/contract/{contractAddress}/smart/{request}
//
// The first returns the uscrt balance of userAddress in the shape of a cosmos
// bank AllBalances response. The second decodes request (base64 of a JSON
// query message), forwards it to the contract with the configured code hash
// and republishes the request_id field of the contract's answer.
//
// Every failure, whether caused by the caller or by the node, is answered with
// a 500 and the error text as a plain-text body.
package gateway
