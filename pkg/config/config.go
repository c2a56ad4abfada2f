// Package config loads project-level settings from a TOML file. Settings
// cover figure defaults, per-kind display overrides, caching, and the
// server. Everything has a usable zero-configuration default; the file
// only needs the values being changed.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/genofig/genofig/pkg/errors"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "genofig.toml"

// Config is the full project configuration.
type Config struct {
	Figure FigureConfig          `toml:"figure"`
	Kinds  map[string]KindConfig `toml:"kinds"`
	Cache  CacheConfig           `toml:"cache"`
	Server ServerConfig          `toml:"server"`
}

// FigureConfig sets figure defaults.
type FigureConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	FontFamily string  `toml:"font_family"`
	FontSize   int     `toml:"font_size"`
	Space      float64 `toml:"space"`
	ShowLegend *bool   `toml:"show_legend"`
}

// KindConfig overrides how one feature kind is drawn.
type KindConfig struct {
	Color     string  `toml:"color"`
	Primitive string  `toml:"primitive"`
	Height    float64 `toml:"height"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none". Defaults to "file".
	Backend string `toml:"backend"`

	// Dir is the file backend's directory. Defaults to ".genofig/cache".
	Dir string `toml:"dir"`

	// RedisURL is the redis backend's connection URL.
	RedisURL string `toml:"redis_url"`

	// TTLSeconds overrides cache entry lifetimes for all pipeline
	// stages. Zero keeps the pipeline defaults.
	TTLSeconds int `toml:"ttl_seconds"`
}

// ServerConfig tunes the HTTP server.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	MongoURI string `toml:"mongo_uri"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Figure: FigureConfig{
			Width:      500,
			Height:     500,
			FontFamily: "Balto",
			FontSize:   14,
			Space:      0.01,
		},
		Cache: CacheConfig{
			Backend: "file",
			Dir:     filepath.Join(".genofig", "cache"),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads a config file, layering it over the defaults. A missing file
// is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config")
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.Cache.Backend {
	case "", "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"unknown cache backend %q (want file, redis, or none)", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == "redis" && cfg.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache backend redis needs redis_url")
	}
	if cfg.Figure.Width < 0 || cfg.Figure.Height < 0 {
		return errors.New(errors.ErrCodeInvalidRange, "figure size must not be negative")
	}
	return nil
}
