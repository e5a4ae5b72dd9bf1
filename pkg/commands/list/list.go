// Package list implements page listing from the cached corpus.
package list

import (
	"github.com/quickpage/tldr/pkg/config"
	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/logging"
	"github.com/quickpage/tldr/pkg/pages"
	"github.com/quickpage/tldr/pkg/paths"
)

// Options defines the options for the List command
type Options struct {
	Settings *config.Settings
	Paths    paths.Paths

	// Platform filters the listing; the "all" sentinel disables filtering
	Platform string
}

// Result holds the sorted page names
type Result struct {
	Pages []string
}

// List enumerates the cached pages for the requested platform
func List(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("platform", opts.Platform).Msg("Executing command")

	if !opts.Settings.Cache.Enabled {
		return nil, errors.New(errors.ErrInvalidInput, "listing requires the local cache; unset "+config.EnvCacheDisabled)
	}

	platform := opts.Platform
	if platform == "" {
		platform = opts.Settings.Platform
	}

	resolver := pages.NewResolver(opts.Paths, opts.Settings.Platform, opts.Settings.Language)
	names := resolver.List(platform)

	log.Info().Int("pageCount", len(names)).Msg("Command finished")
	return &Result{Pages: names}, nil
}
