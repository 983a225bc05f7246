package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Fatalf("unexpected default base URL %s", cfg.APIBaseURL)
	}
	if cfg.PageSize != 4 {
		t.Fatalf("unexpected default page size %d", cfg.PageSize)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.RequestTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("EXPTRACK_API_URL", "https://expenses.example.com")
	t.Setenv("EXPTRACK_PAGE_SIZE", "10")
	t.Setenv("EXPTRACK_REQUEST_TIMEOUT", "30s")

	cfg := Load()
	if cfg.APIBaseURL != "https://expenses.example.com" {
		t.Fatalf("base URL not read from env: %s", cfg.APIBaseURL)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("page size not read from env: %d", cfg.PageSize)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("timeout not read from env: %v", cfg.RequestTimeout)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		mutate func(*Config)
		want   string
	}{
		{func(c *Config) { c.APIBaseURL = "ftp://example.com" }, "scheme"},
		{func(c *Config) { c.PageSize = 0 }, "page size"},
		{func(c *Config) { c.PageSize = 500 }, "page size"},
		{func(c *Config) { c.RequestTimeout = time.Millisecond }, "timeout"},
	}
	for i, tc := range cases {
		cfg := Load()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("case %d error %q does not mention %q", i, err, tc.want)
		}
	}
}
