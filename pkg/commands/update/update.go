// Package update implements the forced cache refresh.
package update

import (
	"github.com/quickpage/tldr/pkg/cache"
	"github.com/quickpage/tldr/pkg/config"
	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/logging"
	"github.com/quickpage/tldr/pkg/paths"
)

// Options defines the options for the Update command
type Options struct {
	Settings *config.Settings
	Paths    paths.Paths

	// Updater may be injected for tests; built from Settings when nil
	Updater *cache.Updater
}

// Update refreshes the page mirror regardless of freshness
func Update(opts Options) error {
	log := logging.GetLogger("commands.update")
	log.Debug().Msg("Executing command")

	if !opts.Settings.Cache.Enabled {
		return errors.New(errors.ErrInvalidInput, "cannot update a disabled cache; unset "+config.EnvCacheDisabled)
	}

	updater := opts.Updater
	if updater == nil {
		updater = cache.NewUpdater(opts.Paths, opts.Settings.Source.ZipURL)
	}
	return updater.Update()
}
