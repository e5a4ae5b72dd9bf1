// Package pages locates page documents in the cached corpus. The search is
// a fixed cascade: a user-local override always wins, then platforms in
// preference order, and within each platform the full language candidate
// list, so a platform-specific page beats a translated generic one.
package pages

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quickpage/tldr/pkg/errors"
	"github.com/quickpage/tldr/pkg/logging"
	"github.com/quickpage/tldr/pkg/paths"
)

// Resolver searches the cache tree for pages
type Resolver struct {
	paths    paths.Paths
	platform string
	language string
}

// NewResolver returns a Resolver preferring the given platform and
// language. Either may be empty: platform falls back to the host platform,
// language to the locale-derived cascade.
func NewResolver(p paths.Paths, platform, language string) *Resolver {
	return &Resolver{paths: p, platform: platform, language: language}
}

// Resolve returns the path of the best matching page for command, or a
// PAGE_NOT_FOUND error once the whole cascade is exhausted.
func (r *Resolver) Resolve(command string) (string, error) {
	logger := logging.GetLogger("pages")

	if local := r.paths.LocalPagePath(command); fileExists(local) {
		logger.Debug().Str("page", local).Msg("Resolved from local override")
		return local, nil
	}

	for _, platform := range platformCandidates(r.platform) {
		for _, language := range languageCandidates(r.language) {
			candidate := r.paths.PagePath(language, platform, command)
			if fileExists(candidate) {
				logger.Debug().
					Str("platform", platform).
					Str("language", language).
					Str("page", candidate).
					Msg("Resolved from cache")
				return candidate, nil
			}
		}
	}

	return "", errors.Newf(errors.ErrPageNotFound, "no cached page for %q", command).
		WithDetail("command", command)
}

// List enumerates the cached page names for a platform. The "all" sentinel
// lists every platform; otherwise the platform and the common fallback are
// both included, matching what Resolve would consider first. Local override
// pages are always included.
func (r *Resolver) List(platform string) []string {
	var platforms []string
	if platform == PlatformAll {
		platforms = KnownPlatforms()
	} else {
		platforms = []string{platform, PlatformCommon}
		if platform == "" || platform == PlatformLocal {
			platforms[0] = HostPlatform()
		}
	}

	seen := map[string]bool{}
	for _, language := range languageCandidates(r.language) {
		for _, platform := range platforms {
			collectPages(filepath.Join(r.paths.LanguageDir(language), platform), seen)
		}
	}
	collectPages(r.paths.LocalDir(), seen)

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeCommand converts CLI arguments into a page identifier:
// lowercase, with internal spaces turned into dashes ("git checkout"
// becomes "git-checkout").
func NormalizeCommand(args []string) string {
	name := strings.Join(args, " ")
	name = strings.TrimSpace(strings.ToLower(name))
	return strings.ReplaceAll(name, " ", "-")
}

// fileExists reports whether path is an existing regular file. Permission
// errors count as absent: for search purposes an unreadable page is no
// page.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func collectPages(dir string, seen map[string]bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, paths.PageExtension) {
			continue
		}
		seen[strings.TrimSuffix(name, paths.PageExtension)] = true
	}
}
