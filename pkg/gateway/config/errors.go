package config

import sdkerrors "cosmossdk.io/errors"

var (
	codespace               = "gateway_config"
	ErrConfigRead           = sdkerrors.Register(codespace, 1, "config reader cannot read config file")
	ErrConfigUnmarshal      = sdkerrors.Register(codespace, 2, "config reader cannot unmarshal json content")
	ErrConfigMissingField   = sdkerrors.Register(codespace, 3, "missing required field in gateway config")
	ErrConfigInvalidURL     = sdkerrors.Register(codespace, 4, "invalid node url in gateway config")
	ErrConfigInvalidGRPCURL = sdkerrors.Register(codespace, 5, "invalid node grpc url in gateway config")
	ErrConfigInvalidTimeout = sdkerrors.Register(codespace, 6, "invalid query timeout in gateway config")
)
