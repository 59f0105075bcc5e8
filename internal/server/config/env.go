package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
	"github.com/joho/godotenv"
)

// defaultEnvFile is loaded when present and no -env flag is given.
const defaultEnvFile = ".env"

// parseEnv overlays Config with process environment variables, after loading
// a dotenv file into the environment.
//
// The dotenv path comes from the -env flag; without it ".env" in the working
// directory is used if it exists. Variables already set in the process
// environment win over the file. An explicit -env file that cannot be read
// panics, like the JSON loader.
//
// Recognised variables:
//
//	HTTP_ADDR, GRPC_ADDR, DATABASE_URL, SECRET_KEY, ALGORITHM,
//	ACCESS_TOKEN_EXPIRE_MINUTES, PASSWORD_HASH_SCHEME, CORS_ORIGINS, LOG_LEVEL
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlag(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if _, err := os.Stat(defaultEnvFile); err == nil {
		_ = godotenv.Load(defaultEnvFile)
	}

	setString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	setString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	setString(&config.DatabaseDSN, "DATABASE_URL")
	setString(&config.SecretKey, "SECRET_KEY")
	setString(&config.SigningAlgorithm, "ALGORITHM")
	setString(&config.PasswordHashScheme, "PASSWORD_HASH_SCHEME")
	setString(&config.LogLevel, "LOG_LEVEL")

	if v, ok := os.LookupEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); ok && v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
	}

	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok && v != "" {
		config.CORSAllowedOrigins = splitList(v)
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// splitList splits a comma separated list, trimming blanks and trailing
// slashes of origins.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimRight(strings.TrimSpace(p), "/"); v != "" {
			out = append(out, v)
		}
	}
	return out
}
