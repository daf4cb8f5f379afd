package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level sakinah configuration.
type Config struct {
	User    UserConfig    `toml:"user"`
	Chat    ChatConfig    `toml:"chat"`
	Prayer  PrayerConfig  `toml:"prayer"`
	Content ContentConfig `toml:"content"`
	Log     LogConfig     `toml:"log"`
}

type UserConfig struct {
	Name string `toml:"name"`
	// ID scopes every stored record. Generated once by `sakinah init`.
	ID       string `toml:"id"`
	Language string `toml:"language"` // en or ms
}

type ChatConfig struct {
	Persona      string `toml:"persona"`
	Model        string `toml:"model"`
	ContextLimit int    `toml:"context_limit"`
	// Stream controls whether replies are printed as they arrive.
	// Defaults to true when not set in config.
	Stream *bool `toml:"stream,omitempty"`
}

// IsStreaming treats nil (missing from config) as true.
func (c ChatConfig) IsStreaming() bool {
	if c.Stream == nil {
		return true
	}
	return *c.Stream
}

type PrayerConfig struct {
	State     string   `toml:"state"`
	Latitude  *float64 `toml:"latitude,omitempty"`
	Longitude *float64 `toml:"longitude,omitempty"`
	Method    int      `toml:"method"` // Aladhan calculation method
}

// ContentConfig tunes the clients that fetch daily content and prayer times.
type ContentConfig struct {
	MaxRetries     int      `toml:"max_retries"`
	InitialBackoff Duration `toml:"initial_backoff"`
	Timeout        Duration `toml:"timeout"`
	QuranBaseURL   string   `toml:"quran_base_url"`
	PrayerBaseURL  string   `toml:"prayer_base_url"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // json or console
	File   string `toml:"file"`
}

// Duration is a time.Duration that reads and writes as "500ms", "10s", etc.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	CacheDir   string
	StateDir   string
	ConfigFile string
	DBFile     string
	LogFile    string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	cacheDir := envOr("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	appConfig := filepath.Join(configDir, "sakinah")
	appData := filepath.Join(dataDir, "sakinah")
	appState := filepath.Join(stateDir, "sakinah")

	return Paths{
		ConfigDir:  appConfig,
		DataDir:    appData,
		CacheDir:   filepath.Join(cacheDir, "sakinah"),
		StateDir:   appState,
		ConfigFile: filepath.Join(appConfig, "config.toml"),
		DBFile:     filepath.Join(appData, "sakinah.db"),
		LogFile:    filepath.Join(appState, "sakinah.log"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	dirs := []string{p.ConfigDir, p.DataDir, p.CacheDir, p.StateDir}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
// Values missing from the file keep their defaults.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if sakinah has been set up.
func Initialized() bool {
	paths := GetPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

// Default returns a fresh default configuration.
func Default() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	return &Config{
		User: UserConfig{
			Language: "en",
		},
		Chat: ChatConfig{
			Persona:      "balanced",
			Model:        "gemini-2.5-flash-lite",
			ContextLimit: 40,
			Stream:       BoolPtr(true),
		},
		Prayer: PrayerConfig{
			State:  "Kuala Lumpur",
			Method: 3,
		},
		Content: ContentConfig{
			MaxRetries:     3,
			InitialBackoff: Duration{500 * time.Millisecond},
			Timeout:        Duration{10 * time.Second},
			QuranBaseURL:   "https://api.alquran.cloud/v1",
			PrayerBaseURL:  "https://api.aladhan.com/v1",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
