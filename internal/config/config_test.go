package config

import (
	"testing"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	var cfg Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "marketplace.db", cfg.DatabaseURL)
	assert.Equal(t, "https://api.jumpseller.com/v1", cfg.Storefront.BaseAPIURL)
	assert.Equal(t, "https://api.cloudinary.com/v1_1", cfg.Media.BaseAPIURL)
}

func TestParse_PrefixedOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_URL", "/var/lib/marketplace/data.db")
	t.Setenv("AUTH_TOKEN_SECRET", "s3cret")
	t.Setenv("STOREFRONT_LOGIN", "tienda@example.com")
	t.Setenv("STOREFRONT_AUTH_TOKEN", "sf-token")
	t.Setenv("MEDIA_CLOUD_NAME", "demo")
	t.Setenv("MEDIA_API_SECRET", "media-secret")

	var cfg Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "production", cfg.Environment.Name)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "/var/lib/marketplace/data.db", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.Auth.TokenSecret)
	assert.Equal(t, "tienda@example.com", cfg.Storefront.Login)
	assert.Equal(t, "sf-token", cfg.Storefront.AuthToken)
	assert.Equal(t, "demo", cfg.Media.CloudName)
	assert.Equal(t, "media-secret", cfg.Media.APISecret)
}
