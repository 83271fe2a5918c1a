package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "https://sportsbetting.dog/picks" {
		t.Errorf("base_url = %q", cfg.BaseURL)
	}
	if cfg.WaitTimeout != 20*time.Second || cfg.Settle != 2*time.Second {
		t.Errorf("timeouts = %s / %s", cfg.WaitTimeout, cfg.Settle)
	}
	if !cfg.Headless || cfg.WindowWidth != 1920 || cfg.WindowHeight != 1080 {
		t.Errorf("browser settings = %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log_level = %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VBET_BASE_URL", "http://localhost:9000/picks")
	t.Setenv("VBET_WAIT_TIMEOUT", "45s")
	t.Setenv("VBET_HEADLESS", "false")
	t.Setenv("VBET_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://localhost:9000/picks" || cfg.WaitTimeout != 45*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Headless || cfg.LogLevel != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	// Registers the variable for cleanup; godotenv only fills unset keys.
	t.Setenv("VBET_SETTLE", "")
	os.Unsetenv("VBET_SETTLE")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("VBET_SETTLE=500ms\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Settle != 500*time.Millisecond {
		t.Errorf("settle = %s", cfg.Settle)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "crawler.yaml")
	data := "base_url: https://example.test/picks\nsettle: 0s\nuser_agent: test-agent\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "https://example.test/picks" || cfg.Settle != 0 || cfg.UserAgent != "test-agent" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{BaseURL: " ", WaitTimeout: 0, Settle: -time.Second}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"base_url", "wait_timeout", "settle"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
