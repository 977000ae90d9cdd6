package client

// Coin is a token amount in a single denomination. Amount is kept as the
// decimal string the chain returns so that arbitrary precision is preserved.
type Coin struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}
