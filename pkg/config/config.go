package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/feedstore/pkg/db"
	"github.com/umputun/feedstore/pkg/mongodb"
	"github.com/umputun/feedstore/pkg/repository"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Store  StoreConfig  `yaml:"store" json:"store" jsonschema:"description=Feed store configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// StoreConfig selects the store backend and holds settings for each of them
type StoreConfig struct {
	Type   string       `yaml:"type" json:"type" jsonschema:"default=sqlite,enum=sqlite,enum=mongo,description=Store backend"`
	SQLite SQLiteConfig `yaml:"sqlite" json:"sqlite" jsonschema:"description=SQLite store settings"`
	Mongo  MongoConfig  `yaml:"mongo" json:"mongo" jsonschema:"description=MongoDB store settings"`
}

// SQLiteConfig holds embedded sqlite store settings
type SQLiteConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedstore.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// MongoConfig holds mongodb store settings
type MongoConfig struct {
	URI        string        `yaml:"uri" json:"uri" jsonschema:"default=mongodb://localhost:27017,description=MongoDB connection URI"`
	Database   string        `yaml:"database" json:"database" jsonschema:"default=feedstore,description=Database name"`
	Collection string        `yaml:"collection" json:"collection" jsonschema:"default=feeds,description=Collection holding feed documents"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Connect and server selection timeout"`
}

// Load reads and parses configuration from file. Environment variables
// referenced as $VAR or ${VAR} are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against the schema reflected from Config
	if err := VerifyAgainstSchema(&cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return &cfg, nil
}

// SetDefaults fills zero values with defaults
func (c *Config) SetDefaults() {
	// set defaults for server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// set defaults for store
	if c.Store.Type == "" {
		c.Store.Type = repository.StoreSQLite
	}
	if c.Store.SQLite.DSN == "" {
		c.Store.SQLite.DSN = "file:feedstore.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Store.SQLite.MaxOpenConns == 0 {
		c.Store.SQLite.MaxOpenConns = 10
	}
	if c.Store.SQLite.MaxIdleConns == 0 {
		c.Store.SQLite.MaxIdleConns = 5
	}
	if c.Store.SQLite.ConnMaxLifetime == 0 {
		c.Store.SQLite.ConnMaxLifetime = 3600
	}
	if c.Store.Mongo.URI == "" {
		c.Store.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Store.Mongo.Database == "" {
		c.Store.Mongo.Database = "feedstore"
	}
	if c.Store.Mongo.Collection == "" {
		c.Store.Mongo.Collection = "feeds"
	}
	if c.Store.Mongo.Timeout == 0 {
		c.Store.Mongo.Timeout = 10 * time.Second
	}
}

// Validate checks configuration for correctness
func (c *Config) Validate() error {
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	switch c.Store.Type {
	case repository.StoreSQLite:
		if c.Store.SQLite.MaxOpenConns < 0 || c.Store.SQLite.MaxIdleConns < 0 {
			return fmt.Errorf("store.sqlite connection limits must be non-negative")
		}
	case repository.StoreMongo:
		if c.Store.Mongo.Database == "" {
			return fmt.Errorf("store.mongo.database is required")
		}
		if c.Store.Mongo.Collection == "" {
			return fmt.Errorf("store.mongo.collection is required")
		}
	default:
		return fmt.Errorf("unknown store type %q", c.Store.Type)
	}
	return nil
}

// Repositories returns the store configuration for repository.NewRepositories
func (c *Config) Repositories() repository.Config {
	return repository.Config{
		Type: c.Store.Type,
		SQLite: db.Config{
			DSN:             c.Store.SQLite.DSN,
			MaxOpenConns:    c.Store.SQLite.MaxOpenConns,
			MaxIdleConns:    c.Store.SQLite.MaxIdleConns,
			ConnMaxLifetime: time.Duration(c.Store.SQLite.ConnMaxLifetime) * time.Second,
		},
		Mongo: mongodb.Config{
			URI:        c.Store.Mongo.URI,
			Database:   c.Store.Mongo.Database,
			Collection: c.Store.Mongo.Collection,
			Timeout:    c.Store.Mongo.Timeout,
		},
	}
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
