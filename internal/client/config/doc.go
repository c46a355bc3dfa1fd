// Package config loads runtime configuration for the FaceForward CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. FACEFORWARD_* environment variables, optionally seeded from a .env
//     file in the working directory.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string            base URL of the analysis API
//	-d string            path of the local session database
//	-l string            log level
//	-s3-endpoint string  S3-compatible endpoint for s3:// inputs
//	-s3-region string    S3 region
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:9000/api",
//	  "database_path": "faceforward.db",
//	  "log_level": "info",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9100",
//	  "s3_access_key": "",
//	  "s3_secret_key": ""
//	}
package config
