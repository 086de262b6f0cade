package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LISTEN", "")

	// Point at a directory with no config file.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != ":8000" {
		t.Errorf("default listen = %q", cfg.Listen)
	}
	if cfg.DatabaseURL == "" {
		t.Error("default database_url should not be empty")
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LISTEN", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "jobsearch.yaml")
	body := "listen: \":9001\"\ndatabase_url: \"postgres://app@db:5432/jobs\"\ndev: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Listen != ":9001" {
		t.Errorf("listen = %q, want :9001", cfg.Listen)
	}
	if cfg.DatabaseURL != "postgres://app@db:5432/jobs" {
		t.Errorf("database_url = %q", cfg.DatabaseURL)
	}
	if !cfg.Dev {
		t.Error("dev should be true")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobsearch.yaml")
	if err := os.WriteFile(path, []byte("database_url: \"postgres://file@db/jobs\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DATABASE_URL", "postgres://env@db/jobs")
	t.Setenv("LISTEN", ":7777")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatabaseURL != "postgres://env@db/jobs" {
		t.Errorf("env should win over file, got %q", cfg.DatabaseURL)
	}
	if cfg.Listen != ":7777" {
		t.Errorf("env should set listen, got %q", cfg.Listen)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for explicitly named missing file")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobsearch.yaml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
