package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/faceforward/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Empty fields leave the current Config value untouched.
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	DatabasePath   string `json:"database_path"`
	LogLevel       string `json:"log_level"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// It does nothing when neither flag is given and panics when the file cannot
// be read or parsed.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFileFlag(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.APIBaseURL, jc.APIBaseURL)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.S3Region, jc.S3Region)
	set(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	set(&cfg.S3AccessKey, jc.S3AccessKey)
	set(&cfg.S3SecretKey, jc.S3SecretKey)
}
