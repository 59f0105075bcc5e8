package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
	"github.com/dmitrijs2005/todokeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration.
// Durations are timex.Duration so both "30m" and integer nanoseconds work.
// Absent keys leave the corresponding Config field untouched.
type JsonConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	SigningAlgorithm            *string         `json:"algorithm"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	PasswordHashScheme          *string         `json:"password_hash_scheme"`
	CORSAllowedOrigins          []string        `json:"cors_allowed_origins"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flag. Without the flag nothing is loaded. An unreadable
// file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	assign(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	assign(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	assign(&config.DatabaseDSN, c.DatabaseDSN)
	assign(&config.SecretKey, c.SecretKey)
	assign(&config.SigningAlgorithm, c.SigningAlgorithm)
	assign(&config.PasswordHashScheme, c.PasswordHashScheme)
	assign(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.CORSAllowedOrigins != nil {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
