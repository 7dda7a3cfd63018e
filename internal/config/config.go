package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	StoreDisk     = "disk"
	StoreMemory   = "memory"
	StoreDynamoDB = "dynamodb"
)

// Config holds all configurable tips settings.
type Config struct {
	Store         string `json:"store"`          // "disk" | "memory" | "dynamodb"
	DynamoTable   string `json:"dynamodb_table"` // required for the dynamodb store
	DynamoOwner   string `json:"dynamodb_owner"` // partition owner, defaults to $USER
	SessionTTL    string `json:"session_ttl"`    // Go duration; "0" keeps sessions forever
	Seed          int64  `json:"seed"`           // 0 seeds from the clock
	LogLevel      string `json:"log_level"`
	LogJournal    bool   `json:"log_journal"`
	DefaultFormat string `json:"default_format"` // "plain" | "markdown" | "json"
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		Store:         StoreDisk,
		SessionTTL:    "12h",
		LogLevel:      "info",
		DefaultFormat: "plain",
	}
}

// TTL parses SessionTTL, falling back to the default on bad input.
func (c Config) TTL() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		d, _ = time.ParseDuration(Defaults().SessionTTL)
	}
	return d
}

// Owner returns the DynamoDB partition owner.
func (c Config) Owner() string {
	if c.DynamoOwner != "" {
		return c.DynamoOwner
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "default"
}

// Validate reports settings that cannot work together.
func (c Config) Validate() error {
	switch c.Store {
	case StoreDisk, StoreMemory:
	case StoreDynamoDB:
		if strings.TrimSpace(c.DynamoTable) == "" {
			return errors.New("store \"dynamodb\" requires dynamodb_table")
		}
	default:
		return fmt.Errorf("unknown store %q (want disk, memory or dynamodb)", c.Store)
	}
	if _, err := time.ParseDuration(c.SessionTTL); err != nil {
		return fmt.Errorf("invalid session_ttl %q: %w", c.SessionTTL, err)
	}
	return nil
}

// LoadGlobal reads ~/.config/tips/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(home, ".config", "tips", "config.json")
	return loadFile(path, true)
}

// LoadProject reads .tipsconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".tipsconfig", false)
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	apply(&result, global)
	apply(&result, project)
	return result
}

func apply(dst *Config, src *Config) {
	if src == nil {
		return
	}
	if src.Store != "" {
		dst.Store = src.Store
	}
	if src.DynamoTable != "" {
		dst.DynamoTable = src.DynamoTable
	}
	if src.DynamoOwner != "" {
		dst.DynamoOwner = src.DynamoOwner
	}
	if src.SessionTTL != "" {
		dst.SessionTTL = src.SessionTTL
	}
	if src.Seed != 0 {
		dst.Seed = src.Seed
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogJournal {
		dst.LogJournal = true
	}
	if src.DefaultFormat != "" {
		dst.DefaultFormat = src.DefaultFormat
	}
}

// ApplyEnv overrides cfg with TIPS_STORE, TIPS_DYNAMODB_TABLE and
// TIPS_LOG_LEVEL when they are set.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("TIPS_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("TIPS_DYNAMODB_TABLE"); v != "" {
		cfg.DynamoTable = v
	}
	if v := os.Getenv("TIPS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
