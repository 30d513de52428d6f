package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TB_BLKDEV_CONFIG", "TB_BLKDEV_LOG_LEVEL", "TB_BLKDEV_PLATFORM", "TB_BLKDEV_OUTPUT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level: debug
platform: linux
output: json
tools:
  lsblk: /usr/local/bin/lsblk
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Platform != "linux" || cfg.Output != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Tools.Lsblk != "/usr/local/bin/lsblk" {
		t.Errorf("tools = %+v", cfg.Tools)
	}
	if cfg.Tools.Diskpart != "" {
		t.Errorf("unset tool should stay empty, got %q", cfg.Tools.Diskpart)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "output: yaml\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Platform != "auto" || cfg.Output != "yaml" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log_level: debug\nplatform: linux\n")
	t.Setenv("TB_BLKDEV_LOG_LEVEL", "warn")
	t.Setenv("TB_BLKDEV_PLATFORM", "darwin")
	t.Setenv("TB_BLKDEV_OUTPUT", "json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.Platform != "darwin" || cfg.Output != "json" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoad_EnvPath(t *testing.T) {
	clearEnv(t)
	t.Setenv("TB_BLKDEV_CONFIG", writeConfig(t, "platform: windows\n"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Platform != "windows" {
		t.Errorf("platform = %q, want windows", cfg.Platform)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"unknown field", "colour: blue\n", "parse config"},
		{"bad yaml", "log_level: [\n", "parse config"},
		{"invalid level", "log_level: verbose\n", "unknown log level"},
		{"invalid platform", "platform: beos\n", "unsupported platform"},
		{"invalid output", "output: xml\n", "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error = %v, want it to mention %q", err, tt.errPart)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Errorf("error = %v", err)
	}
}

func TestLoad_InvalidEnvOutput(t *testing.T) {
	clearEnv(t)
	t.Setenv("TB_BLKDEV_OUTPUT", "csv")

	_, err := Load(writeConfig(t, ""))
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("error = %v, want an output format error", err)
	}
}

func TestValidate_AutoPlatform(t *testing.T) {
	for _, platform := range []string{"", "auto", " AUTO "} {
		cfg := Default()
		cfg.Platform = platform
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with platform %q: %v", platform, err)
		}
	}
}
