// Package config loads tool configuration from a TOML file.
//
// Configuration is optional. A missing file yields the defaults; flags
// given on the command line override whatever the file says.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is the config location relative to the user config dir
// (e.g. ~/.config/cladogram/config.toml on Linux).
const DefaultPath = "cladogram/config.toml"

// Config is the full configuration tree.
type Config struct {
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// RenderConfig controls defaults for the render and view commands.
type RenderConfig struct {
	// Style selects the glyph set: "unicode" or "ascii".
	Style string `toml:"style"`
	// Collapse controls unary-chain collapsing before layout.
	Collapse bool `toml:"collapse"`
}

// ServeConfig controls the HTTP service.
type ServeConfig struct {
	// Addr is the listen address, host:port.
	Addr string `toml:"addr"`
	// Cache selects the render cache backend: "null", "file" or "redis".
	Cache string `toml:"cache"`
	// CacheDir is the directory for the file cache backend.
	CacheDir string `toml:"cache_dir"`
	// CacheTTL bounds how long rendered artifacts stay cached.
	CacheTTL duration `toml:"cache_ttl"`
	// RedisAddr is the Redis address for the redis cache backend.
	RedisAddr string `toml:"redis_addr"`
	// MongoURI enables the MongoDB tree store when set. Empty keeps
	// trees in memory.
	MongoURI string `toml:"mongo_uri"`
}

// duration lets TOML carry values like "15m".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// Duration returns the configured cache TTL as a time.Duration.
func (c ServeConfig) Duration() time.Duration { return time.Duration(c.CacheTTL) }

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Render: RenderConfig{Style: "unicode", Collapse: true},
		Serve: ServeConfig{
			Addr:     ":8080",
			Cache:    "null",
			CacheTTL: duration(15 * time.Minute),
		},
	}
}

// Load reads configuration from path. An empty path means the default
// location under the user config dir. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, DefaultPath)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		return cfg, fmt.Errorf("load config %s: unknown key %q", path, keys[0].String())
	}
	return cfg, nil
}
