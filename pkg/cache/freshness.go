// Package cache maintains the local mirror of the page corpus: deciding
// when it is stale, refreshing it from the published archive, and fetching
// single pages directly when caching is disabled.
package cache

import (
	"os"
	"time"

	"github.com/quickpage/tldr/pkg/logging"
)

// DefaultMaxAge is how old the freshness marker may get before a refresh
// is due.
const DefaultMaxAge = 14 * 24 * time.Hour

// IsStale reports whether the corpus behind markerPath needs a refresh.
// A missing marker is stale, and so is any marker that cannot be stat'd:
// when in doubt, refresh.
func IsStale(markerPath string, maxAge time.Duration) bool {
	info, err := os.Stat(markerPath)
	if err != nil {
		logger := logging.GetLogger("cache")
		logger.Debug().
			Str("marker", markerPath).
			Err(err).
			Msg("Freshness marker unreadable, treating as stale")
		return true
	}
	return time.Since(info.ModTime()) > maxAge
}
