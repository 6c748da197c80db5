package config

import (
	"flag"
	"time"
)

// parseFlags parses the storage server's command-line flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-public-base-url externally reachable root for blob public URLs
//	-d database DSN
//	-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-token-sign-key bearer token signing key
//	-token-issuer bearer token issuer name
//	-token-duration bearer token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags() *ServerConfig {
	var httpAddress string
	var publicBaseURL string
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	flag.StringVar(&httpAddress, "a", "", "Net address host:port")
	flag.StringVar(&publicBaseURL, "public-base-url", "", "Public base URL for blob links")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Parse()

	return &ServerConfig{
		Server: Server{
			HTTPAddress:    httpAddress,
			PublicBaseURL:  publicBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{Driver: databaseDriver, DSN: databaseDSN},
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
	}
}
