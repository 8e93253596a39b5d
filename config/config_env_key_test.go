package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "",
			"timeout": "30s",
		},
		"session": map[string]any{
			"profileTTL":    "5m",
			"encryptionKey": "",
		},
		"poller": map[string]any{
			"unreadInterval": "30s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "SESSION_PROFILETTL", want: "session.profileTTL"},
		{envKey: "SESSION_ENCRYPTIONKEY", want: "session.encryptionKey"},
		{envKey: "POLLER_UNREADINTERVAL", want: "poller.unreadInterval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.API.BaseURL = "https://api.example.com/"

	applyDefaults(cfg)

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Session.ProfileTTL)
	assert.Equal(t, "/auth/sign-in", cfg.Session.SignInRoute)
	assert.Equal(t, "/dashboard", cfg.Session.HomeRoute)
	assert.Equal(t, 30*time.Second, cfg.Poller.UnreadInterval)
	assert.Equal(t, "10MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 8088, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
	if assert.NotNil(t, cfg.QRCode) {
		assert.Equal(t, 256, cfg.QRCode.Size)
		assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	}
}

func TestLoadWithEnv_EnvOverridesWithoutFile(t *testing.T) {
	t.Setenv("PLANNER_API_BASEURL", "https://wedding.example.com")
	t.Setenv("PLANNER_SESSION_PROFILETTL", "2m")

	cfg, err := LoadWithEnv[Config]("does-not-exist")
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, "https://wedding.example.com", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Session.ProfileTTL)
}

func TestLoadWithEnv_AllowedOriginsFromCommaList(t *testing.T) {
	t.Setenv("PLANNER_HTTP_ALLOWEDORIGINS", "http://localhost:3000,https://planner.example.com")

	cfg, err := LoadWithEnv[Config]("does-not-exist")
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, []string{"http://localhost:3000", "https://planner.example.com"}, cfg.HTTP.AllowedOrigins)
}
