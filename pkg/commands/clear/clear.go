// Package clear implements cache removal.
package clear

import (
	"os"

	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/logging"
	"github.com/quickpage/tldr/pkg/paths"
)

// Options defines the options for the Clear command
type Options struct {
	Paths paths.Paths
}

// Clear removes the mirrored page corpus. User-authored pages under the
// local override directory are kept: the updater never wrote those and
// cannot restore them.
func Clear(opts Options) error {
	log := logging.GetLogger("commands.clear")
	dir := opts.Paths.PageSourceDir()
	log.Debug().Str("dir", dir).Msg("Executing command")

	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, errors.ErrCacheAccess, "failed to remove %s", dir)
	}
	return nil
}
