package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpire(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"15m", 15 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"1d12h", 36 * time.Hour},
		{"90s", 90 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExpire(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExpireRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "d", "sevend", "7dd", "1w"} {
		_, err := ParseExpire(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestExpireDecode(t *testing.T) {
	var e Expire
	require.NoError(t, e.Decode("7d"))
	assert.Equal(t, 7*24*time.Hour, e.Duration())

	assert.Error(t, e.Decode("nope"))
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "portal",
		DBPassword: "pw",
		DBName:     "jobs",
		DBSSLMode:  "require",
	}
	assert.Equal(t, "postgres://portal:pw@db.internal:5433/jobs?sslmode=require", cfg.DSN())
}
