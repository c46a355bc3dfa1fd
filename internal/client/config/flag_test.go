package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://10.0.0.1:9000/api", "-d", "/var/lib/ff.db", "-l", "warn",
				"-s3-endpoint", "http://minio:9000", "-s3-region", "eu-west-1"},
			expected: &Config{APIBaseURL: "http://10.0.0.1:9000/api", DatabasePath: "/var/lib/ff.db", LogLevel: "warn",
				S3BaseEndpoint: "http://minio:9000", S3Region: "eu-west-1"},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-c", "cfg.json", "-x", "1", "-a", "http://h/api"},
			expected: &Config{APIBaseURL: "http://h/api"},
		},
		{
			name:        "missing value panics",
			args:        []string{"-a"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
