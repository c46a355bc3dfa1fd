package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names read by parseEnv.
const (
	EnvAPIBaseURL     = "FACEFORWARD_API_URL"
	EnvDatabasePath   = "FACEFORWARD_DB"
	EnvLogLevel       = "FACEFORWARD_LOG_LEVEL"
	EnvS3Region       = "FACEFORWARD_S3_REGION"
	EnvS3BaseEndpoint = "FACEFORWARD_S3_ENDPOINT"
	EnvS3AccessKey    = "FACEFORWARD_S3_ACCESS_KEY"
	EnvS3SecretKey    = "FACEFORWARD_S3_SECRET_KEY"
)

// parseEnv overlays cfg with FACEFORWARD_* variables. Values from dotenvPath
// are loaded first if the file exists; variables already set in the process
// environment win over the file.
func parseEnv(cfg *Config, dotenvPath string) {
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			if err := godotenv.Load(dotenvPath); err != nil {
				panic(err)
			}
		}
	}

	overlay := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	overlay(&cfg.APIBaseURL, EnvAPIBaseURL)
	overlay(&cfg.DatabasePath, EnvDatabasePath)
	overlay(&cfg.LogLevel, EnvLogLevel)
	overlay(&cfg.S3Region, EnvS3Region)
	overlay(&cfg.S3BaseEndpoint, EnvS3BaseEndpoint)
	overlay(&cfg.S3AccessKey, EnvS3AccessKey)
	overlay(&cfg.S3SecretKey, EnvS3SecretKey)
}
