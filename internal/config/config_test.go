package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gazetteer/internal/listview"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, defaultBaseURL)
	}
	if cfg.PageSize != listview.DefaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, listview.DefaultPageSize)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}
}

func TestLoad_ReadsValues(t *testing.T) {
	path := writeConfig(t, "base_url = \"countries.example.com:9000\"\npage_size = 20\nlog_level = \"debug\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "countries.example.com:9000" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.PageSize != 20 {
		t.Fatalf("PageSize = %d, want 20", cfg.PageSize)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_BlankValuesFallBack(t *testing.T) {
	path := writeConfig(t, "base_url = \"  \"\nlog_level = \"\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestLoad_RejectsDisallowedPageSize(t *testing.T) {
	path := writeConfig(t, "page_size = 7\n")

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "page_size") {
		t.Fatalf("Load error = %v, want page_size error", err)
	}
}

func TestLoad_RejectsMalformedToml(t *testing.T) {
	path := writeConfig(t, "base_url = [broken\n")

	if _, err := Load(path); err == nil {
		t.Fatalf("Load accepted malformed toml, want error")
	}
}
