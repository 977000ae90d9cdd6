package config

import (
	"bytes"
	"errors"
	"net"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const configType = "json"

// JSONGatewayConfig is the structure used to unmarshal the gateway config file.
type JSONGatewayConfig struct {
	URL          string `mapstructure:"url"`
	ChainID      string `mapstructure:"chain_id"`
	CodeHash     string `mapstructure:"code_hash"`
	GRPCURL      string `mapstructure:"grpc_url"`
	GRPCInsecure bool   `mapstructure:"grpc_insecure"`
	QueryTimeout string `mapstructure:"query_timeout"`
}

// GatewayConfig is the validated gateway configuration. It is built once at
// startup and never mutated afterwards.
type GatewayConfig struct {
	// NodeURL is the LCD (REST) endpoint of the upstream node.
	NodeURL *url.URL
	ChainID string
	// CodeHash is the default contract code hash sent with every smart query.
	CodeHash string

	// GRPCURL is the optional host:port of the node's gRPC endpoint. When set,
	// balance queries are sent over gRPC instead of REST.
	GRPCURL      string
	GRPCInsecure bool

	// QueryTimeout is the per-request deadline applied to upstream calls.
	// Zero means no deadline.
	QueryTimeout time.Duration
}

// LoadGatewayConfig reads and parses the JSON config file at path.
// Environment variables are never consulted.
func LoadGatewayConfig(path string) (*GatewayConfig, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, ErrConfigUnmarshal.Wrapf("%s: %s", path, err)
		}
		return nil, ErrConfigRead.Wrapf("%s", err)
	}

	return parseFromViper(v)
}

// ParseGatewayConfig parses raw JSON config content into a GatewayConfig.
func ParseGatewayConfig(configContent []byte) (*GatewayConfig, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(configContent)); err != nil {
		return nil, ErrConfigUnmarshal.Wrapf("%s", err)
	}

	return parseFromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(configType)
	v.SetDefault("grpc_insecure", true)
	return v
}

func parseFromViper(v *viper.Viper) (*GatewayConfig, error) {
	var jsonGatewayConfig JSONGatewayConfig
	if err := v.Unmarshal(&jsonGatewayConfig); err != nil {
		return nil, ErrConfigUnmarshal.Wrapf("%s", err)
	}

	return jsonGatewayConfig.validate()
}

func (c JSONGatewayConfig) validate() (*GatewayConfig, error) {
	requiredFields := []struct{ key, value string }{
		{"url", c.URL},
		{"chain_id", c.ChainID},
		{"code_hash", c.CodeHash},
	}
	for _, field := range requiredFields {
		if field.value == "" {
			return nil, ErrConfigMissingField.Wrapf("%q", field.key)
		}
	}

	nodeURL, err := url.Parse(c.URL)
	if err != nil {
		return nil, ErrConfigInvalidURL.Wrapf("%s", err)
	}
	if (nodeURL.Scheme != "http" && nodeURL.Scheme != "https") || nodeURL.Host == "" {
		return nil, ErrConfigInvalidURL.Wrapf("expected an absolute http(s) url, got %q", c.URL)
	}

	if c.GRPCURL != "" {
		if _, _, err = net.SplitHostPort(c.GRPCURL); err != nil {
			return nil, ErrConfigInvalidGRPCURL.Wrapf("expected host:port, got %q", c.GRPCURL)
		}
	}

	var queryTimeout time.Duration
	if c.QueryTimeout != "" {
		queryTimeout, err = time.ParseDuration(c.QueryTimeout)
		if err != nil {
			return nil, ErrConfigInvalidTimeout.Wrapf("%s", err)
		}
		if queryTimeout < 0 {
			return nil, ErrConfigInvalidTimeout.Wrapf("must not be negative, got %s", queryTimeout)
		}
	}

	return &GatewayConfig{
		NodeURL:      nodeURL,
		ChainID:      c.ChainID,
		CodeHash:     c.CodeHash,
		GRPCURL:      c.GRPCURL,
		GRPCInsecure: c.GRPCInsecure,
		QueryTimeout: queryTimeout,
	}, nil
}
