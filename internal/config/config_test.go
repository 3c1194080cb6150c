package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.HTTPServer.Port = 3000
	cfg.HTTPServer.Timeout.Read = 5 * time.Second
	cfg.HTTPServer.Timeout.Write = 10 * time.Second
	cfg.HTTPServer.Timeout.Idle = time.Minute
	cfg.HTTPServer.Timeout.ReadHeader = 2 * time.Second
	cfg.Auth.APIKey = "secret"
	cfg.Log.Level = "info"
	cfg.Shutdown.Timeout = 10 * time.Second
	return cfg
}

func Test_Config_Validate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(cfg *Config)
		expectErr string
	}{
		{
			name:   "valid config passes",
			mutate: func(_ *Config) {},
		},
		{
			name:      "missing API key rejected",
			mutate:    func(cfg *Config) { cfg.Auth.APIKey = "" },
			expectErr: "APIKey",
		},
		{
			name:      "zero port rejected",
			mutate:    func(cfg *Config) { cfg.HTTPServer.Port = 0 },
			expectErr: "Port",
		},
		{
			name:      "out-of-range port rejected",
			mutate:    func(cfg *Config) { cfg.HTTPServer.Port = 70000 },
			expectErr: "Port",
		},
		{
			name:      "unknown log level rejected",
			mutate:    func(cfg *Config) { cfg.Log.Level = "verbose" },
			expectErr: "Level",
		},
		{
			name:      "zero shutdown timeout rejected",
			mutate:    func(cfg *Config) { cfg.Shutdown.Timeout = 0 },
			expectErr: "Timeout",
		},
		{
			name:      "pprof enabled without addr rejected",
			mutate:    func(cfg *Config) { cfg.PProf.Enabled = true },
			expectErr: "Addr",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			cfg := validConfig()
			tc.mutate(cfg)

			// when
			err := cfg.Validate()

			// then
			if tc.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func Test_Config_String_MasksAPIKey(t *testing.T) {
	cfg := validConfig()

	s := cfg.String()

	assert.NotContains(t, s, "secret")
	assert.Contains(t, s, "****")
}
