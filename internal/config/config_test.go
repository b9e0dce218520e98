package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SHOPIFY_APP_URL", "https://qr.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://qr.example.com", cfg.Shopify.AppURL)
	assert.Equal(t, 20*time.Second, cfg.Shopify.Timeout)
	assert.Equal(t, 256, cfg.QRImage.Size)
	assert.Equal(t, "2025-01", cfg.Shopify.APIVersion)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHOPIFY_RETRY_COUNT", "5")
	t.Setenv("QR_IMAGE_SIZE", "512")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Shopify.RetryCount)
	assert.Equal(t, 512, cfg.QRImage.Size)
	assert.True(t, cfg.IsDevelopment())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{DSN: "host=localhost"},
			Shopify:  ShopifyConfig{AppURL: "https://qr.example.com", APIKey: "key", APISecret: "secret"},
			QRImage:  QRImageConfig{Size: 256},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing dsn", func(c *Config) { c.Database.DSN = "" }, true},
		{"missing app url", func(c *Config) { c.Shopify.AppURL = "" }, true},
		{"relative app url", func(c *Config) { c.Shopify.AppURL = "qr.example.com" }, true},
		{"missing api key", func(c *Config) { c.Shopify.APIKey = "" }, true},
		{"missing secret", func(c *Config) { c.Shopify.APISecret = "" }, true},
		{"bad image size", func(c *Config) { c.QRImage.Size = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
