package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	sdkerrors "cosmossdk.io/errors"
	"github.com/stretchr/testify/require"

	"github.com/ojo-network/contractMonitor/pkg/gateway/config"
)

func Test_ParseGatewayConfig(t *testing.T) {
	tests := []struct {
		desc string

		inputConfig string

		expectedError  *sdkerrors.Error
		expectedConfig *config.GatewayConfig
	}{
		// Valid Configs
		{
			desc: "valid: minimal gateway config",

			inputConfig: `{
				"url": "https://lcd.secret.example:1317",
				"chain_id": "secret-4",
				"code_hash": "af74387e276be8874f07bec3a87023ee49b0e7ebe08178c49d0a49c3c98ed60e"
			}`,

			expectedConfig: &config.GatewayConfig{
				ChainID:      "secret-4",
				CodeHash:     "af74387e276be8874f07bec3a87023ee49b0e7ebe08178c49d0a49c3c98ed60e",
				GRPCInsecure: true,
			},
		},
		{
			desc: "valid: gateway config with optional fields",

			inputConfig: `{
				"url": "http://127.0.0.1:1317",
				"chain_id": "pulsar-3",
				"code_hash": "abc",
				"grpc_url": "127.0.0.1:9090",
				"grpc_insecure": false,
				"query_timeout": "5s"
			}`,

			expectedConfig: &config.GatewayConfig{
				ChainID:      "pulsar-3",
				CodeHash:     "abc",
				GRPCURL:      "127.0.0.1:9090",
				GRPCInsecure: false,
				QueryTimeout: 5 * time.Second,
			},
		},
		// Invalid Configs
		{
			desc: "invalid: empty gateway config",

			inputConfig: ``,

			expectedError: config.ErrConfigUnmarshal,
		},
		{
			desc: "invalid: malformed json",

			inputConfig: `{"url": "http://127.0.0.1:1317",`,

			expectedError: config.ErrConfigUnmarshal,
		},
		{
			desc: "invalid: top-level json array",

			inputConfig: `["http://127.0.0.1:1317"]`,

			expectedError: config.ErrConfigUnmarshal,
		},
		{
			desc: "invalid: missing url",

			inputConfig: `{"chain_id": "secret-4", "code_hash": "abc"}`,

			expectedError: config.ErrConfigMissingField,
		},
		{
			desc: "invalid: missing chain_id",

			inputConfig: `{"url": "http://127.0.0.1:1317", "code_hash": "abc"}`,

			expectedError: config.ErrConfigMissingField,
		},
		{
			desc: "invalid: missing code_hash",

			inputConfig: `{"url": "http://127.0.0.1:1317", "chain_id": "secret-4"}`,

			expectedError: config.ErrConfigMissingField,
		},
		{
			desc: "invalid: relative node url",

			inputConfig: `{"url": "lcd.secret.example", "chain_id": "secret-4", "code_hash": "abc"}`,

			expectedError: config.ErrConfigInvalidURL,
		},
		{
			desc: "invalid: non-http node url",

			inputConfig: `{"url": "tcp://127.0.0.1:26657", "chain_id": "secret-4", "code_hash": "abc"}`,

			expectedError: config.ErrConfigInvalidURL,
		},
		{
			desc: "invalid: grpc url without port",

			inputConfig: `{"url": "http://127.0.0.1:1317", "chain_id": "secret-4", "code_hash": "abc", "grpc_url": "127.0.0.1"}`,

			expectedError: config.ErrConfigInvalidGRPCURL,
		},
		{
			desc: "invalid: unparsable query timeout",

			inputConfig: `{"url": "http://127.0.0.1:1317", "chain_id": "secret-4", "code_hash": "abc", "query_timeout": "soon"}`,

			expectedError: config.ErrConfigInvalidTimeout,
		},
		{
			desc: "invalid: negative query timeout",

			inputConfig: `{"url": "http://127.0.0.1:1317", "chain_id": "secret-4", "code_hash": "abc", "query_timeout": "-1s"}`,

			expectedError: config.ErrConfigInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			gatewayConfig, err := config.ParseGatewayConfig([]byte(tt.inputConfig))

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Nil(t, gatewayConfig)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, gatewayConfig.NodeURL)
			require.Equal(t, tt.expectedConfig.ChainID, gatewayConfig.ChainID)
			require.Equal(t, tt.expectedConfig.CodeHash, gatewayConfig.CodeHash)
			require.Equal(t, tt.expectedConfig.GRPCURL, gatewayConfig.GRPCURL)
			require.Equal(t, tt.expectedConfig.GRPCInsecure, gatewayConfig.GRPCInsecure)
			require.Equal(t, tt.expectedConfig.QueryTimeout, gatewayConfig.QueryTimeout)
		})
	}
}

func Test_LoadGatewayConfig(t *testing.T) {
	t.Run("reads config file from disk", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		err := os.WriteFile(configPath, []byte(`{
			"url": "https://lcd.secret.example",
			"chain_id": "secret-4",
			"code_hash": "abc"
		}`), 0o600)
		require.NoError(t, err)

		gatewayConfig, err := config.LoadGatewayConfig(configPath)
		require.NoError(t, err)
		require.Equal(t, "https://lcd.secret.example", gatewayConfig.NodeURL.String())
		require.Equal(t, "secret-4", gatewayConfig.ChainID)
		require.Equal(t, "abc", gatewayConfig.CodeHash)
	})

	t.Run("config file without extension is parsed as json", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "gateway")
		err := os.WriteFile(configPath, []byte(`{"url":"http://localhost:1317","chain_id":"c","code_hash":"h"}`), 0o600)
		require.NoError(t, err)

		_, err = config.LoadGatewayConfig(configPath)
		require.NoError(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		gatewayConfig, err := config.LoadGatewayConfig(filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, config.ErrConfigRead)
		require.Nil(t, gatewayConfig)
	})

	t.Run("config file with invalid json", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte("not-json"), 0o600))

		gatewayConfig, err := config.LoadGatewayConfig(configPath)
		require.ErrorIs(t, err, config.ErrConfigUnmarshal)
		require.Nil(t, gatewayConfig)
	})

	t.Run("config file missing code_hash is rejected", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"url":"http://localhost:1317","chain_id":"c"}`), 0o600))

		gatewayConfig, err := config.LoadGatewayConfig(configPath)
		require.ErrorIs(t, err, config.ErrConfigMissingField)
		require.ErrorContains(t, err, "code_hash")
		require.Nil(t, gatewayConfig)
	})
}
