// Package config loads bangsuggestd's configuration from an optional YAML
// file, using yaml.v3-tagged structs with sane defaults. cmd/bangsuggestd
// takes the file path from its --config flag; no individual setting has a
// flag of its own.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bangdash/bangsuggest/internal/logging"
)

// Config is the top-level configuration for bangsuggestd.
type Config struct {
	// ListenAddr is the main API listener address, e.g. ":8080".
	ListenAddr string `yaml:"listen_addr"`

	// HealthAddr is the health/metrics listener address, e.g. ":8081".
	HealthAddr string `yaml:"health_addr"`

	// UpstreamSuggestURL is the external suggestions API template (spec
	// component C6). Empty uses the built-in default.
	UpstreamSuggestURL string `yaml:"upstream_suggest_url"`

	// ExternalTimeout bounds each upstream suggestion fetch.
	ExternalTimeout time.Duration `yaml:"external_timeout"`

	// CacheTTL and CacheCapacity bound the external-suggestion cache.
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	CacheCapacity int           `yaml:"cache_capacity"`

	// CorpusExtraPath optionally names a newline-delimited file of extra
	// corpus words (internal/corpus.LoadExtra).
	CorpusExtraPath string `yaml:"corpus_extra_path"`

	Logging logging.Config `yaml:"logging"`
}

// Default returns the zero-config defaults: listeners on :8080 and :8081
// (all interfaces), terminal
// logging at info level, and the built-in external suggestion defaults.
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		HealthAddr:      ":8081",
		ExternalTimeout: 3 * time.Second,
		CacheTTL:        60 * time.Second,
		CacheCapacity:   500,
		Logging: logging.Config{
			Style: logging.StyleTerminal,
			Level: logging.LevelInfo,
		},
	}
}

// Load reads and parses a YAML config file at path, applying Default() for
// any field the file omits. An empty path returns
// Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	// Unmarshal onto the defaults so omitted fields keep their default value.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
