// Package config loads the edudash configuration.
//
// Values are layered, lowest to highest priority: built-in defaults, the
// edudash.yaml file, EDUDASH_* environment variables and command-line flags.
package config

import (
	"time"

	"github.com/leapstack-labs/edudash/internal/executor"
	"github.com/leapstack-labs/edudash/pkg/adapter"
)

// StoreConfig describes the relational store holding the dataset.
type StoreConfig struct {
	Type string `koanf:"type"` // mysql, postgres, sqlite, duckdb

	// File-based stores (SQLite, DuckDB)
	Path string `koanf:"path"`

	// Network stores
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Database string `koanf:"database"`

	// Additional driver-specific options
	Options map[string]string `koanf:"options"`
}

// AdapterConfig converts the store section into the adapter's config.
func (s StoreConfig) AdapterConfig() adapter.Config {
	return adapter.Config{
		Type:     s.Type,
		Path:     s.Path,
		Host:     s.Host,
		Port:     s.Port,
		Database: s.Database,
		Username: s.User,
		Password: s.Password,
		Options:  s.Options,
	}
}

// UIConfig holds configuration for the web dashboard.
type UIConfig struct {
	Port           int           `koanf:"port"`
	AssetsDir      string        `koanf:"assets_dir"`
	Watch          bool          `koanf:"watch"`
	SessionSecret  string        `koanf:"session_secret"`
	StatusInterval time.Duration `koanf:"status_interval"`
}

// Config holds all CLI configuration options.
type Config struct {
	Store          StoreConfig   `koanf:"store"`
	QueryTimeout   time.Duration `koanf:"query_timeout"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	SeedsDir       string        `koanf:"seeds_dir"`
	UI             UIConfig      `koanf:"ui"`
	Verbose        bool          `koanf:"verbose"`
	OutputFormat   string        `koanf:"output"`
}

// Default configuration values.
const (
	DefaultStoreType      = "mysql"
	DefaultHost           = "localhost"
	DefaultMySQLPort      = 3306
	DefaultPostgresPort   = 5432
	DefaultDatabase       = "Global_literacy"
	DefaultUser           = "root"
	DefaultSeedsDir       = "seeds"
	DefaultAssetsDir      = "assets"
	DefaultUIPort         = 8501
	DefaultOutput         = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultConnectTimeout = adapter.DefaultConnectTimeout
	DefaultQueryTimeout   = executor.DefaultTimeout
	DefaultStatusInterval = 30 * time.Second
)

// ConfigFileNames are searched, in order, in the working directory.
var ConfigFileNames = []string{"edudash.yaml", "edudash.yml"}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() *Config {
	return &Config{
		Store: StoreConfig{
			Type:     DefaultStoreType,
			Host:     DefaultHost,
			Port:     DefaultMySQLPort,
			User:     DefaultUser,
			Database: DefaultDatabase,
		},
		QueryTimeout:   DefaultQueryTimeout,
		ConnectTimeout: DefaultConnectTimeout,
		SeedsDir:       DefaultSeedsDir,
		UI: UIConfig{
			Port:           DefaultUIPort,
			AssetsDir:      DefaultAssetsDir,
			Watch:          true,
			StatusInterval: DefaultStatusInterval,
		},
		OutputFormat: DefaultOutput,
	}
}
