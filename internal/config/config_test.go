package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")
	t.Setenv("XDG_CACHE_HOME", tmpDir+"/cache")
	t.Setenv("XDG_STATE_HOME", tmpDir+"/state")
	return tmpDir
}

func TestGetPaths(t *testing.T) {
	paths := GetPaths()

	if paths.ConfigDir == "" {
		t.Fatal("ConfigDir should not be empty")
	}
	if paths.DataDir == "" {
		t.Fatal("DataDir should not be empty")
	}
	if paths.ConfigFile == "" {
		t.Fatal("ConfigFile should not be empty")
	}
	if paths.DBFile == "" {
		t.Fatal("DBFile should not be empty")
	}
	if paths.LogFile == "" {
		t.Fatal("LogFile should not be empty")
	}
}

func TestGetPathsRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/testxdg/config")
	t.Setenv("XDG_DATA_HOME", "/tmp/testxdg/data")
	t.Setenv("XDG_STATE_HOME", "/tmp/testxdg/state")

	paths := GetPaths()

	if paths.ConfigDir != "/tmp/testxdg/config/sakinah" {
		t.Fatalf("expected /tmp/testxdg/config/sakinah, got %s", paths.ConfigDir)
	}
	if paths.DataDir != "/tmp/testxdg/data/sakinah" {
		t.Fatalf("expected /tmp/testxdg/data/sakinah, got %s", paths.DataDir)
	}
	if paths.LogFile != "/tmp/testxdg/state/sakinah/sakinah.log" {
		t.Fatalf("unexpected log file %s", paths.LogFile)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Chat.Persona != "balanced" {
		t.Fatalf("expected persona 'balanced', got %q", cfg.Chat.Persona)
	}
	if cfg.Chat.ContextLimit != 40 {
		t.Fatalf("expected context limit 40, got %d", cfg.Chat.ContextLimit)
	}
	if cfg.Prayer.Method != 3 {
		t.Fatalf("expected prayer method 3, got %d", cfg.Prayer.Method)
	}
	if cfg.Content.Timeout.Duration != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.Content.Timeout)
	}
	if !cfg.Chat.IsStreaming() {
		t.Fatal("streaming should default to on")
	}
}

func TestChatConfig_IsStreamingNil(t *testing.T) {
	var c ChatConfig
	if !c.IsStreaming() {
		t.Fatal("nil Stream should be treated as true")
	}
	c.Stream = BoolPtr(false)
	if c.IsStreaming() {
		t.Fatal("explicit false should disable streaming")
	}
}

func TestEnsureDirs(t *testing.T) {
	setupXDG(t)

	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs failed: %v", err)
	}

	for _, dir := range []string{paths.ConfigDir, paths.DataDir, paths.CacheDir, paths.StateDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("dir %s not created: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("%s is not a directory", dir)
		}
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	setupXDG(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prayer.State != "Kuala Lumpur" {
		t.Fatalf("expected default state, got %q", cfg.Prayer.State)
	}
	if Initialized() {
		t.Fatal("Initialized should be false before Save")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	setupXDG(t)
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	raw := "[user]\nname = \"Aisyah\"\n\n[content]\ninitial_backoff = \"250ms\"\n"
	if err := os.WriteFile(paths.ConfigFile, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.User.Name != "Aisyah" {
		t.Errorf("name = %q, want Aisyah", cfg.User.Name)
	}
	if cfg.Content.InitialBackoff.Duration != 250*time.Millisecond {
		t.Errorf("initial_backoff = %v, want 250ms", cfg.Content.InitialBackoff)
	}
	if cfg.Chat.ContextLimit != 40 {
		t.Errorf("context_limit should keep default 40, got %d", cfg.Chat.ContextLimit)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmp := setupXDG(t)

	cfg := Default()
	cfg.User.Name = "Hafiz"
	cfg.User.ID = "5d6c1b1e-7f2a-4c53-9a0e-2d7a9e6f0b11"
	cfg.User.Language = "ms"
	cfg.Prayer.State = "Johor"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmp, "config", "sakinah", "config.toml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.User != cfg.User {
		t.Errorf("user round-trip mismatch: got %+v want %+v", loaded.User, cfg.User)
	}
	if loaded.Prayer.State != "Johor" {
		t.Errorf("state = %q, want Johor", loaded.Prayer.State)
	}
	if loaded.Content.Timeout != cfg.Content.Timeout {
		t.Errorf("timeout round-trip mismatch: %v vs %v", loaded.Content.Timeout, cfg.Content.Timeout)
	}
	if !Initialized() {
		t.Fatal("Initialized should be true after Save")
	}
}
