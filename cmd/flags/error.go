package flags

import cosmoserrors "cosmossdk.io/errors"

var (
	namespace = "flags"

	ErrFlagInvalidValue = cosmoserrors.Register(namespace, 1201, "flag value is invalid")
)
