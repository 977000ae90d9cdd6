package volatile

const (
	// DenomuSCRT is the staking/fee token of the upstream chain; the balance
	// route only ever queries this denomination.
	DenomuSCRT = "uscrt"

	// DefaultListenAddress is the address the gateway binds when no
	// --listen-address is given.
	DefaultListenAddress = ":3000"
)
