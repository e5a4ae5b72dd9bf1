// Package show implements the main operation: locate the best page for a
// command and hand its raw markup to the caller for rendering.
package show

import (
	"os"

	"github.com/quickpage/tldr/pkg/cache"
	"github.com/quickpage/tldr/pkg/config"
	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/logging"
	"github.com/quickpage/tldr/pkg/pages"
	"github.com/quickpage/tldr/pkg/paths"
)

// Options defines the options for the Show command
type Options struct {
	Settings *config.Settings
	Paths    paths.Paths

	// Command is the normalized page identifier, never empty
	Command string

	// Updater and Fetcher may be injected for tests; built from Settings
	// when nil
	Updater *cache.Updater
	Fetcher *cache.Fetcher
}

// Result carries the located page
type Result struct {
	Command string

	// Source is the cache path the page came from, empty for a direct fetch
	Source string

	// FromCache distinguishes a cache hit from a network fetch
	FromCache bool

	// Content is the raw page markup
	Content string
}

// Show resolves and reads the page for opts.Command. With caching enabled
// it refreshes a stale mirror first (refresh failures degrade to whatever
// is cached), then walks the resolution cascade, falling back to a direct
// fetch on a miss. With caching disabled the cascade is never consulted.
func Show(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.show")
	log.Debug().Str("command", opts.Command).Msg("Executing command")

	if opts.Command == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no command name given")
	}

	if !opts.Settings.Cache.Enabled {
		return fetchDirect(opts)
	}

	if cache.IsStale(opts.Paths.IndexPath(), opts.Settings.Cache.MaxAge()) {
		updater := opts.Updater
		if updater == nil {
			updater = cache.NewUpdater(opts.Paths, opts.Settings.Source.ZipURL)
		}
		if err := updater.Update(); err != nil {
			// A failed refresh is not fatal: run with whatever is cached.
			log.Warn().Err(err).Msg("Cache refresh failed, using existing cache")
		}
	}

	resolver := pages.NewResolver(opts.Paths, opts.Settings.Platform, opts.Settings.Language)
	path, err := resolver.Resolve(opts.Command)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrPageNotFound) {
			log.Debug().Str("command", opts.Command).Msg("Cache miss, trying direct fetch")
			return fetchDirect(opts)
		}
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read page %s", path)
	}

	return &Result{
		Command:   opts.Command,
		Source:    path,
		FromCache: true,
		Content:   string(content),
	}, nil
}

// fetchDirect pulls the page from the canonical source, trying the
// preferred platform and then the common fallback.
func fetchDirect(opts Options) (*Result, error) {
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = cache.NewFetcher(opts.Settings.Source.PagesURL)
	}

	platform := opts.Settings.Platform
	if platform == "" || platform == pages.PlatformLocal {
		platform = pages.HostPlatform()
	}

	candidates := []string{platform}
	if platform != pages.PlatformCommon {
		candidates = append(candidates, pages.PlatformCommon)
	}

	var lastErr error
	for _, p := range candidates {
		content, err := fetcher.Page(p, opts.Command)
		if err == nil {
			return &Result{Command: opts.Command, Content: content}, nil
		}
		if !errors.IsErrorCode(err, errors.ErrPageNotFound) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
