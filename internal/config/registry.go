package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString   KeyType = "string"
	KeyTypeInt      KeyType = "int"
	KeyTypeBool     KeyType = "bool"
	KeyTypeDuration KeyType = "duration"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	// Type is the value's data type.
	Type KeyType
	// Desc is a human-readable description shown in `sakinah config list`.
	Desc string
	// DefaultStr is the string representation of the default value.
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

var validPersonas = []string{"balanced", "counselor", "friend", "ustaz"}

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:  KeyTypeString,
		Desc:  "Display name",
		get:   func(cfg *Config) string { return cfg.User.Name },
		set:   func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset: func(cfg *Config) { cfg.User.Name = "" },
	},
	"user.language": {
		Type:       KeyTypeString,
		Desc:       "Label language for day headings (en, ms)",
		DefaultStr: "en",
		get:        func(cfg *Config) string { return cfg.User.Language },
		set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "en" && v != "ms" {
				return fmt.Errorf("invalid language %q (use en or ms)", v)
			}
			cfg.User.Language = v
			return nil
		},
		unset: func(cfg *Config) { cfg.User.Language = "en" },
	},
	"chat.persona": {
		Type:       KeyTypeString,
		Desc:       "Companion persona (balanced, counselor, friend, ustaz)",
		DefaultStr: "balanced",
		get:        func(cfg *Config) string { return cfg.Chat.Persona },
		set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			for _, p := range validPersonas {
				if p == v {
					cfg.Chat.Persona = v
					return nil
				}
			}
			return fmt.Errorf("invalid persona %q (use one of: %s)", v, strings.Join(validPersonas, ", "))
		},
		unset: func(cfg *Config) { cfg.Chat.Persona = "balanced" },
	},
	"chat.model": {
		Type:       KeyTypeString,
		Desc:       "Gemini model name",
		DefaultStr: "gemini-2.5-flash-lite",
		get:        func(cfg *Config) string { return cfg.Chat.Model },
		set:        func(cfg *Config, v string) error { cfg.Chat.Model = v; return nil },
		unset:      func(cfg *Config) { cfg.Chat.Model = "gemini-2.5-flash-lite" },
	},
	"chat.context_limit": {
		Type:       KeyTypeInt,
		Desc:       "Number of past messages sent as context",
		DefaultStr: "40",
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Chat.ContextLimit) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid value %q for chat.context_limit (positive integer required)", v)
			}
			cfg.Chat.ContextLimit = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Chat.ContextLimit = 40 },
	},
	"chat.stream": {
		Type:       KeyTypeBool,
		Desc:       "Print replies as they arrive",
		DefaultStr: "true",
		get:        func(cfg *Config) string { return fmt.Sprintf("%t", cfg.Chat.IsStreaming()) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for chat.stream: %w", v, err)
			}
			cfg.Chat.Stream = BoolPtr(b)
			return nil
		},
		unset: func(cfg *Config) { cfg.Chat.Stream = BoolPtr(true) },
	},
	"prayer.state": {
		Type:       KeyTypeString,
		Desc:       "Malaysian state used for prayer times",
		DefaultStr: "Kuala Lumpur",
		get:        func(cfg *Config) string { return cfg.Prayer.State },
		set:        func(cfg *Config, v string) error { cfg.Prayer.State = v; return nil },
		unset:      func(cfg *Config) { cfg.Prayer.State = "Kuala Lumpur" },
	},
	"prayer.method": {
		Type:       KeyTypeInt,
		Desc:       "Aladhan calculation method",
		DefaultStr: "3",
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Prayer.Method) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid value %q for prayer.method", v)
			}
			cfg.Prayer.Method = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Prayer.Method = 3 },
	},
	"content.max_retries": {
		Type:       KeyTypeInt,
		Desc:       "Retries for daily content and prayer fetches",
		DefaultStr: "3",
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Content.MaxRetries) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid value %q for content.max_retries", v)
			}
			cfg.Content.MaxRetries = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Content.MaxRetries = 3 },
	},
	"content.timeout": {
		Type:       KeyTypeDuration,
		Desc:       "Per-request timeout for content fetches",
		DefaultStr: "10s",
		get:        func(cfg *Config) string { return cfg.Content.Timeout.String() },
		set: func(cfg *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil || d <= 0 {
				return fmt.Errorf("invalid value %q for content.timeout (e.g. 10s)", v)
			}
			cfg.Content.Timeout = Duration{d}
			return nil
		},
		unset: func(cfg *Config) { cfg.Content.Timeout = Duration{10 * time.Second} },
	},
	"log.level": {
		Type:       KeyTypeString,
		Desc:       "Log level (debug, info, warn, error)",
		DefaultStr: "info",
		get:        func(cfg *Config) string { return cfg.Log.Level },
		set: func(cfg *Config, v string) error {
			switch v {
			case "debug", "info", "warn", "error":
				cfg.Log.Level = v
				return nil
			}
			return fmt.Errorf("invalid log level %q", v)
		},
		unset: func(cfg *Config) { cfg.Log.Level = "info" },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts common boolean string representations.
// Valid truthy values: true, 1, yes, on.
// Valid falsy values: false, 0, no, off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}
