// Package config loads Planforge configuration from a TOML file and the
// environment. Precedence, lowest to highest: built-in defaults, the
// config file, environment variables.
package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/integrations/gemini"
)

// Cache backend names accepted in configuration.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheMongo = "mongo"
)

// Environment variable names. GEMINI_API_KEY follows the upstream SDK
// convention; everything else is namespaced under PLANFORGE_.
const (
	EnvAPIKey        = "GEMINI_API_KEY"
	EnvModel         = "PLANFORGE_MODEL"
	EnvCacheBackend  = "PLANFORGE_CACHE"
	EnvCacheDir      = "PLANFORGE_CACHE_DIR"
	EnvRedisURL      = "PLANFORGE_REDIS_URL"
	EnvMongoURI      = "PLANFORGE_MONGO_URI"
	EnvMongoDatabase = "PLANFORGE_MONGO_DB"
	EnvListenAddr    = "PLANFORGE_ADDR"
)

// Config holds all Planforge settings.
type Config struct {
	// APIKey authenticates against the generation API. Never written to
	// the config file by tooling; prefer the environment.
	APIKey string `toml:"api_key"`

	// Model is the text-generation model to use.
	Model string `toml:"model"`

	// CacheBackend selects the cache implementation: none, file, redis
	// or mongo.
	CacheBackend string `toml:"cache"`

	// CacheDir is the directory for the file backend.
	CacheDir string `toml:"cache_dir"`

	// RedisURL configures the redis backend.
	RedisURL string `toml:"redis_url"`

	// MongoURI and MongoDatabase configure the mongo backend.
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_db"`

	// ListenAddr is the server bind address.
	ListenAddr string `toml:"listen_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model:         gemini.DefaultModel,
		CacheBackend:  CacheNone,
		CacheDir:      defaultCacheDir(),
		MongoDatabase: "planforge",
		ListenAddr:    ":8080",
	}
}

// Load builds the effective configuration. If path is empty the default
// location is probed; a missing file is not an error, a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config file %s", path)
		}
	} else if explicit {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config file %s", path)
	}

	cfg.applyEnv()
	return cfg, nil
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/planforge/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "planforge", "config.toml")
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	setIfPresent(&c.APIKey, EnvAPIKey)
	setIfPresent(&c.Model, EnvModel)
	setIfPresent(&c.CacheBackend, EnvCacheBackend)
	setIfPresent(&c.CacheDir, EnvCacheDir)
	setIfPresent(&c.RedisURL, EnvRedisURL)
	setIfPresent(&c.MongoURI, EnvMongoURI)
	setIfPresent(&c.MongoDatabase, EnvMongoDatabase)
	setIfPresent(&c.ListenAddr, EnvListenAddr)
}

func setIfPresent(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// Validate checks field values that have a closed set of options.
func (c *Config) Validate() error {
	switch c.CacheBackend {
	case "", CacheNone, CacheFile, CacheRedis, CacheMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid cache backend: %q (must be one of: none, file, redis, mongo)", c.CacheBackend)
	}
	if c.Model != "" {
		if err := errors.ValidateModelName(c.Model); err != nil {
			return err
		}
	}
	return nil
}

// RequireAPIKey returns the API key or a typed error explaining how to
// provide one.
func (c *Config) RequireAPIKey() (string, error) {
	if c.APIKey == "" {
		return "", errors.New(errors.ErrCodeUnauthorized,
			"missing API key (set %s or api_key in the config file)", EnvAPIKey)
	}
	return c.APIKey, nil
}

// NewCache constructs the configured cache backend.
func (c *Config) NewCache(ctx context.Context) (cache.Cache, error) {
	switch c.CacheBackend {
	case "", CacheNone:
		return cache.NewNullCache(), nil
	case CacheFile:
		return cache.NewFileCache(c.CacheDir)
	case CacheRedis:
		if c.RedisURL == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "redis cache selected but redis_url is empty")
		}
		return cache.NewRedisCache(ctx, c.RedisURL)
	case CacheMongo:
		if c.MongoURI == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "mongo cache selected but mongo_uri is empty")
		}
		return cache.NewMongoCache(ctx, c.MongoURI, c.MongoDatabase)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid cache backend: %q", c.CacheBackend)
	}
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".planforge-cache"
	}
	return filepath.Join(dir, "planforge")
}
