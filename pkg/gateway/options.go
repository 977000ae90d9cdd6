package gateway

// WithListenAddress sets the host:port the gateway listens on.
func WithListenAddress(listenAddress string) gatewayServerOption {
	return func(gw *gatewayServer) {
		gw.listenAddress = listenAddress
	}
}

// WithCodeHash sets the code hash sent alongside every smart query.
func WithCodeHash(codeHash string) gatewayServerOption {
	return func(gw *gatewayServer) {
		gw.codeHash = codeHash
	}
}
