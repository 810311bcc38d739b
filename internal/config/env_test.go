package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PLAYERS_TEST_VALUE", "  hello  ")
	assert.Equal(t, "hello", GetEnv("PLAYERS_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PLAYERS_TEST_UNSET", "fallback"))

	t.Setenv("PLAYERS_TEST_BLANK", "   ")
	assert.Equal(t, "fallback", GetEnv("PLAYERS_TEST_BLANK", "fallback"))
}

func TestGetSeconds(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset", "", time.Minute},
		{"valid seconds", "90", 90 * time.Second},
		{"not a number", "soon", time.Minute},
		{"negative", "-5", time.Minute},
		{"zero", "0", time.Minute},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.value != "" {
				t.Setenv("PLAYERS_TEST_SECONDS", tc.value)
			}
			assert.Equal(t, tc.want, GetSeconds("PLAYERS_TEST_SECONDS", time.Minute))
		})
	}
}

func TestEnsureURL(t *testing.T) {
	assert.Equal(t, "", EnsureURL("", "https"))
	assert.Equal(t, "https://example.com", EnsureURL("https://example.com", "https"))
	assert.Equal(t, "http://example.com", EnsureURL("http://example.com", "https"))
	assert.Equal(t, "https://example.com", EnsureURL("example.com", ""))
}

func TestDerivePublicURL(t *testing.T) {
	t.Run("explicit public url wins", func(t *testing.T) {
		t.Setenv("PUBLIC_URL", "https://players.example.com")
		assert.Equal(t, "https://players.example.com", DerivePublicURL(":8080", "", ""))
	})

	t.Run("vercel domain", func(t *testing.T) {
		t.Setenv("VERCEL_URL", "players.vercel.app")
		assert.Equal(t, "https://players.vercel.app", DerivePublicURL(":8080", "", ""))
	})

	t.Run("derived from bind address", func(t *testing.T) {
		assert.Equal(t, "http://localhost:9090", DerivePublicURL(":9090", "", ""))
		assert.Equal(t, "http://localhost:8080", DerivePublicURL("0.0.0.0:8080", "", ""))
	})
}
