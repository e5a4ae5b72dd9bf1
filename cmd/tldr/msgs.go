package tldr

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort   = "Simplified, community-maintained man pages"
	MsgListShort   = "List the cached pages for a platform"
	MsgUpdateShort = "Refresh the local page cache"
	MsgClearShort  = "Remove the local page cache"

	// Status messages
	MsgNoPagesFound = "No pages cached yet. Run 'tldr update' first."
	MsgCacheCleared = "Page cache removed."
	MsgCacheUpdated = "Page cache is up to date."

	// Error messages
	MsgErrInitPaths    = "failed to initialize cache paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrNoCommand    = "no command name given (try 'tldr tar')"
	MsgErrPageNotFound = "no page for %q; run 'tldr update' or check the spelling"
	MsgErrReadStdin    = "failed to read page from stdin: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagPlatform = "Preferred platform (linux, osx, windows, sunos, android, common)"
	MsgFlagLanguage = "Page language (overrides the locale-derived cascade)"
	MsgFlagAll      = "Do not filter by platform"
)

// Long messages
const (
	MsgRootLong = `tldr shows simplified, example-driven help pages for command line tools.

Pages are served from a locally cached mirror of the community page corpus,
refreshed automatically when it grows stale. Pages you author yourself under
the cache's local/ directory always take precedence. With no command name,
a page document is read from stdin and rendered as-is.`

	MsgListLong = `List displays the names of every cached page matching the preferred
platform (plus the common fallback). Use --all to ignore platforms and
list the whole corpus.`

	MsgUpdateLong = `Update downloads the latest page archive and extracts it over the local
mirror, regardless of how fresh the current cache is.`
)
