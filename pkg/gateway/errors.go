package gateway

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                       = "gateway"
	ErrGatewayDecodeRequest         = sdkerrors.Register(codespace, 1, "unable to decode request")
	ErrGatewayUpstream              = sdkerrors.Register(codespace, 2, "upstream query failed")
	ErrGatewayEncodeResponse        = sdkerrors.Register(codespace, 3, "unable to encode response")
	ErrGatewayMissingListenAddress  = sdkerrors.Register(codespace, 4, "missing gateway listen address")
	ErrGatewayMissingCodeHash       = sdkerrors.Register(codespace, 5, "missing contract code hash")
	ErrGatewayUnexpectedQueryResult = sdkerrors.Register(codespace, 6, "unexpected contract query result")
)
