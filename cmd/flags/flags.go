package flags

const (
	FlagLogLevel      = "log-level"
	FlagLogLevelUsage = "The logging level (debug|info|warn|error)"
	DefaultLogLevel   = "info"

	FlagListenAddress      = "listen-address"
	FlagListenAddressUsage = "The host:port the gateway HTTP server binds to"

	FlagMetricsAddr      = "metrics-addr"
	FlagMetricsAddrUsage = "The host:port to expose prometheus metrics on; metrics are disabled when empty"
	DefaultMetricsAddr   = ""
)
