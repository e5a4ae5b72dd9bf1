// Package config loads the tldr settings as a typed struct threaded through
// the rest of the program. Precedence, lowest to highest: embedded defaults,
// the user's config.toml, TLDR_* environment variables, CLI flags (applied
// by the command layer onto the returned struct).
package config

import (
	_ "embed"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/quickpage/tldr/pkg/errors"
)

// EnvCacheDisabled disables the local page cache entirely: every lookup
// becomes a direct network fetch and no cache state is read or written.
const EnvCacheDisabled = "TLDR_CACHE_DISABLED"

//go:embed defaults.toml
var defaultConfig []byte

// Settings is the resolved process configuration
type Settings struct {
	// Platform is the preferred platform; empty means the host platform
	Platform string `koanf:"platform"`

	// Language is an explicit language override; empty means locale-derived
	Language string `koanf:"language"`

	Cache  CacheSettings  `koanf:"cache"`
	Source SourceSettings `koanf:"source"`
}

// CacheSettings controls the local page mirror
type CacheSettings struct {
	Enabled    bool `koanf:"enabled"`
	MaxAgeDays int  `koanf:"max_age_days"`
}

// SourceSettings names the upstream page corpus
type SourceSettings struct {
	PagesURL string `koanf:"pages_url"`
	ZipURL   string `koanf:"zip_url"`
}

// MaxAge returns the cache freshness threshold as a duration
func (c CacheSettings) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeDays) * 24 * time.Hour
}

// Load builds the Settings from defaults, an optional config file, and the
// environment. A missing config file is not an error; a malformed one is.
func Load(configFile string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile)
			}
		}
	}

	if err := k.Load(env.Provider("TLDR_", ".", envKeyMap), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	if os.Getenv(EnvCacheDisabled) != "" {
		s.Cache.Enabled = false
	}

	return &s, nil
}

// envKeyMap maps the supported TLDR_* variables onto config keys.
// Unknown variables map to "" and are skipped by koanf.
func envKeyMap(key string) string {
	switch key {
	case "TLDR_PLATFORM":
		return "platform"
	case "TLDR_LANGUAGE":
		return "language"
	case "TLDR_PAGES_URL":
		return "source.pages_url"
	case "TLDR_ZIP_URL":
		return "source.zip_url"
	default:
		return ""
	}
}

// rawBytesProvider implements koanf.Provider for in-memory bytes
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}
