package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.Equal(t, 10, cfg.PostsPerPage)
	assert.Equal(t, 20, cfg.FeedCacheTTLSeconds)
}

func TestConfigValidate(t *testing.T) {
	base := Config{
		Port:                "8560",
		JWTSecret:           "test-secret",
		PostsPerPage:        10,
		FeedCacheTTLSeconds: 20,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid development config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Port = "" },
			wantErr: true,
		},
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.JWTSecret = "" },
			wantErr: true,
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.PostsPerPage = 0 },
			wantErr: true,
		},
		{
			name:    "negative cache ttl",
			mutate:  func(c *Config) { c.FeedCacheTTLSeconds = -1 },
			wantErr: true,
		},
		{
			name: "default secret rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "your-secret-key-change-in-production"
			},
			wantErr: true,
		},
		{
			name: "weak db password rejected in production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.JWTSecret = "a-very-long-production-secret-value-123456"
				c.DBPassword = "password"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
