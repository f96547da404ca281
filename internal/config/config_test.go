package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "localhost", cfg.PostgresHost)
	require.Equal(t, uint16(6379), cfg.RedisPort)
	require.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	require.Equal(t, 5, cfg.PageSize)
	require.Equal(t, uint16(8085), cfg.HttpServerPort)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing_secret", env: map[string]string{}},
		{name: "short_secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "page_size_zero", env: map[string]string{"JWT_SECRET": testSecret, "PAGE_SIZE": "0"}},
		{name: "refresh_shorter_than_access", env: map[string]string{
			"JWT_SECRET":        testSecret,
			"ACCESS_TOKEN_TTL":  "48h",
			"REFRESH_TOKEN_TTL": "24h",
		}},
		{name: "bad_port", env: map[string]string{"JWT_SECRET": testSecret, "HTTP_SERVER_PORT": "80"}},
		{name: "bad_sslmode", env: map[string]string{"JWT_SECRET": testSecret, "POSTGRES_SSLMODE": "sometimes"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
