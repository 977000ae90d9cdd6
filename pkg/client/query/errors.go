package query

import sdkerrors "cosmossdk.io/errors"

var (
	codespace                  = "query"
	ErrQueryBalance            = sdkerrors.Register(codespace, 1, "unable to query balance")
	ErrQueryContract           = sdkerrors.Register(codespace, 2, "unable to query contract")
	ErrQueryUnexpectedResponse = sdkerrors.Register(codespace, 3, "unexpected response from node")
	ErrQueryTimeout            = sdkerrors.Register(codespace, 4, "query deadline exceeded")
)
