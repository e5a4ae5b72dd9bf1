// Package paths provides centralized path handling for the tldr cache.
// It implements XDG Base Directory compliance and derives the cache tree
// layout (page corpus, local overrides, freshness marker) once per process.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/quickpage/tldr/pkg/errors"
)

// Environment variable names
const (
	// EnvCacheDir overrides the XDG cache directory for tldr
	EnvCacheDir = "TLDR_CACHE_DIR"

	// EnvConfigDir overrides the XDG config directory for tldr
	EnvConfigDir = "TLDR_CONFIG_DIR"
)

// Cache tree layout.
// IMPORTANT: these names mirror the published page archive and are not
// user-configurable; changing them orphans every existing cache.
const (
	// TldrDirName is the directory name for tldr-specific files
	TldrDirName = "tldr"

	// PageSourceDirName holds the mirrored page corpus
	PageSourceDirName = "page-source"

	// LocalDirName holds user-authored override pages
	LocalDirName = "local"

	// IndexFileName is the freshness marker written after each refresh
	IndexFileName = "index.json"

	// DefaultLanguageDir is the untagged English page tree
	DefaultLanguageDir = "pages"

	// ConfigFileName is the optional user configuration file
	ConfigFileName = "config.toml"

	// PageExtension is the suffix of every page document
	PageExtension = ".md"
)

// Paths provides centralized path management for the tldr cache
type Paths interface {
	CacheRoot() string
	PageSourceDir() string
	LanguageDir(language string) string
	PagePath(language, platform, command string) string
	LocalDir() string
	LocalPagePath(command string) string
	IndexPath() string
	ConfigDir() string
	ConfigFilePath() string
}

type paths struct {
	// cacheRoot is the root directory of the managed cache tree
	cacheRoot string

	// configDir is where config.toml lives
	configDir string
}

// New creates a new Paths instance rooted at cacheRoot. If cacheRoot is
// empty, it is derived from TLDR_CACHE_DIR, else from the XDG cache home.
func New(cacheRoot string) (Paths, error) {
	p := &paths{}

	if cacheRoot == "" {
		if envRoot := os.Getenv(EnvCacheDir); envRoot != "" {
			cacheRoot = expandHome(envRoot)
		} else {
			cacheRoot = filepath.Join(xdg.CacheHome, TldrDirName)
		}
	} else {
		cacheRoot = expandHome(cacheRoot)
	}

	absRoot, err := filepath.Abs(cacheRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for cache root")
	}
	p.cacheRoot = absRoot

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.configDir = expandHome(configDir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, TldrDirName)
	}

	return p, nil
}

func (p *paths) CacheRoot() string {
	return p.cacheRoot
}

func (p *paths) PageSourceDir() string {
	return filepath.Join(p.cacheRoot, PageSourceDirName)
}

// LanguageDir maps a language code to its corpus subdirectory: the empty
// code means the untagged default tree.
func (p *paths) LanguageDir(language string) string {
	if language == "" {
		return filepath.Join(p.PageSourceDir(), DefaultLanguageDir)
	}
	return filepath.Join(p.PageSourceDir(), DefaultLanguageDir+"."+language)
}

func (p *paths) PagePath(language, platform, command string) string {
	return filepath.Join(p.LanguageDir(language), platform, command+PageExtension)
}

func (p *paths) LocalDir() string {
	return filepath.Join(p.cacheRoot, LocalDirName)
}

func (p *paths) LocalPagePath(command string) string {
	return filepath.Join(p.LocalDir(), command+PageExtension)
}

func (p *paths) IndexPath() string {
	return filepath.Join(p.PageSourceDir(), IndexFileName)
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
