package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-l", "127.0.0.1:8080", "-a", "127.0.0.1:9090", "-d", "db", "-s", "secret", "-g", "HS384",
			"-t", "5", "-p", "bcrypt", "-o", "https://a.example,https://b.example/", "-v", "debug",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrHTTP:            "127.0.0.1:8080",
				EndpointAddrGRPC:            "127.0.0.1:9090",
				DatabaseDSN:                 "db",
				SecretKey:                   "secret",
				SigningAlgorithm:            "HS384",
				AccessTokenValidityDuration: 5 * time.Minute,
				PasswordHashScheme:          "bcrypt",
				CORSAllowedOrigins:          []string{"https://a.example", "https://b.example"},
				LogLevel:                    "debug",
			}},
		{name: "foreign flags are ignored", args: []string{"cmd", "-config", "x.json", "-env", ".env", "-s", "k", "-t", "1"},
			expectPanic: false,
			expected: &Config{
				SecretKey:                   "k",
				AccessTokenValidityDuration: 1 * time.Minute,
			}},
		{name: "non numeric ttl", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
