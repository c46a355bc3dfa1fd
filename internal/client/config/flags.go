package config

import (
	"flag"

	"github.com/dmitrijs2005/faceforward/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string            base URL of the analysis API
//	-d string            path of the local SQLite database
//	-l string            log level
//	-s3-endpoint string  S3-compatible endpoint for s3:// inputs
//	-s3-region string    S3 region
//
// Only these flags are picked out of args (see flagx.FilterArgs); a parse
// error panics.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l", "-s3-endpoint", "-s3-region"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the analysis API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.S3BaseEndpoint, "s3-endpoint", cfg.S3BaseEndpoint, "S3-compatible endpoint for s3:// inputs")
	fs.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "S3 region")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
