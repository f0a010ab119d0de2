package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/loans"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.RequestSizeBytes() != constants.DefaultMaxRequestSizeBytes {
		t.Fatalf("expected default max request size, got %d", cfg.RequestSizeBytes())
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Fatalf("expected default read timeout, got %v", cfg.ReadTimeout)
	}

	params, err := cfg.Defaults()
	if err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}
	if params != loans.DefaultParameters() {
		t.Fatalf("expected default parameters, got %+v", params)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxRequestSize: 1M
readTimeout: 5s
shutdownTimeout: 30s
version: v1.2.3
calculator:
  amount: 100000
  interestRate: 12
  durationMonths: 24
  interestModel: compound
logging:
  level: debug
  format: console
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.RequestSizeBytes() != 1024*1024 {
		t.Fatalf("expected max request override, got %d", cfg.RequestSizeBytes())
	}
	if cfg.ReadTimeout != 5*time.Second || cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected timeout overrides, got read %v shutdown %v", cfg.ReadTimeout, cfg.ShutdownTimeout)
	}
	if cfg.WriteTimeout != 15*time.Second {
		t.Fatalf("expected default write timeout, got %v", cfg.WriteTimeout)
	}
	if cfg.Version != "v1.2.3" {
		t.Fatalf("expected version override, got %s", cfg.Version)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("expected logging overrides, got %+v", cfg.Logging)
	}

	params, err := cfg.Defaults()
	if err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}
	if params.Model != loans.Compound || params.Principal != 100000 || params.DurationMonths != 24 {
		t.Fatalf("unexpected calculator defaults %+v", params)
	}
}

func TestLoadConfigInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	if err := os.WriteFile(path, []byte("maxRequestSize: invalid"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid size but got nil")
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxRequestSizeBytes,
		"1024":      1024,
		"512b":      512,
		"64K":       64 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1TB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}

	overflows := []string{
		"9223372036854775807K",
		"18014398509481985M", // wraps to exactly 1M without the bound check
		"9223372036854775808",
	}
	for _, input := range overflows {
		if got, err := ParseSize(input); err == nil {
			t.Fatalf("ParseSize(%q) = %d, expected overflow error", input, got)
		}
	}

	if got, err := ParseSize("8796093022207M"); err != nil || got != 8796093022207*1024*1024 {
		t.Fatalf("ParseSize at the upper bound = %d, %v", got, err)
	}
}
