package config

import (
	"flag"
	"os"

	"github.com/dbellanger/lexico/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-d string     PostgreSQL DSN
//	-s string     token signing secret key
//	-t duration   token lifetime (e.g., "168h")
//	-i string     token issuer
//	-u string     token audience
//	-w duration   store call timeout (e.g., "3s")
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-i", "-u", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret key")
	fs.DurationVar(&config.TokenLifetime, "t", config.TokenLifetime, "token lifetime")
	fs.StringVar(&config.TokenIssuer, "i", config.TokenIssuer, "token issuer claim")
	fs.StringVar(&config.TokenAudience, "u", config.TokenAudience, "token audience claim")
	fs.DurationVar(&config.StoreTimeout, "w", config.StoreTimeout, "store call timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
