package server

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.StoragePath != "" {
		t.Fatalf("StoragePath = %q, want empty", cfg.StoragePath)
	}
	if cfg.ServiceName != "oracledocs-site" {
		t.Fatalf("ServiceName = %q, want %q", cfg.ServiceName, "oracledocs-site")
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("ORACLEDOCS_STORAGE_PATH", "/tmp/feedback.db")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.StoragePath != "/tmp/feedback.db" {
		t.Fatalf("StoragePath = %q, want %q", cfg.StoragePath, "/tmp/feedback.db")
	}
}

func TestParseConfigFlagBeatsEnv(t *testing.T) {
	t.Setenv("ORACLEDOCS_HTTP_ADDR", "localhost:9999")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:7001"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:7001" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:7001")
	}
}
