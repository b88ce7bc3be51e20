package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Root != "./trajectories" {
		t.Errorf("default root = %q", cfg.Root)
	}
	if cfg.LogDir != "." {
		t.Errorf("default log dir = %q", cfg.LogDir)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvRoot, "/data/trajs")
	t.Setenv(EnvLogDir, "/data/logs")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != "/data/trajs" {
		t.Errorf("root = %q, want env value", cfg.Root)
	}
	if cfg.LogDir != "/data/logs" {
		t.Errorf("log dir = %q, want env value", cfg.LogDir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "root: /mnt/trajectories\nlog_dir: /var/log/trajlens\n"
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)
	t.Setenv(EnvRoot, "")
	t.Setenv(EnvLogDir, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != "/mnt/trajectories" {
		t.Errorf("root = %q, want file value", cfg.Root)
	}
	if cfg.LogDir != "/var/log/trajlens" {
		t.Errorf("log dir = %q, want file value", cfg.LogDir)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("root: /from/file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)
	t.Setenv(EnvRoot, "/from/env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Root != "/from/env" {
		t.Errorf("root = %q, env must beat file", cfg.Root)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("root: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}
