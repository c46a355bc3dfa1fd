package config

import "os"

// Config holds runtime settings for the FaceForward CLI.
//
// Fields:
//   - APIBaseURL: base URL of the external analysis REST API.
//   - DatabasePath: SQLite file holding the local session.
//   - LogLevel: debug, info, warn or error.
//   - S3Region / S3BaseEndpoint / S3AccessKey / S3SecretKey: settings used
//     when images are read from s3://bucket/key locations. Empty credentials
//     mean the default AWS credential chain.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	LogLevel       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:9000/api"
	c.DatabasePath = "faceforward.db"
	c.LogLevel = "info"
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and an optional .env file), a JSON file and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
