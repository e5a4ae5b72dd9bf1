package pages

import "runtime"

// Platform sentinels. "local" is never searched as a directory: the local
// override short-circuit in Resolve covers it. "all" disables platform
// filtering in list mode.
const (
	PlatformLocal  = "local"
	PlatformAll    = "all"
	PlatformCommon = "common"
)

// fallbackPlatforms is the fixed search order after the preferred platform.
// common always comes first as the universal fallback.
var fallbackPlatforms = []string{
	PlatformCommon,
	"linux",
	"osx",
	"windows",
	"sunos",
	"android",
}

// KnownPlatforms returns every platform directory name the corpus uses
func KnownPlatforms() []string {
	return append([]string(nil), fallbackPlatforms...)
}

// HostPlatform maps the running OS onto a corpus platform name
func HostPlatform() string {
	switch runtime.GOOS {
	case "linux":
		return "linux"
	case "darwin":
		return "osx"
	case "windows":
		return "windows"
	case "solaris", "illumos":
		return "sunos"
	case "android":
		return "android"
	default:
		return PlatformCommon
	}
}

// platformCandidates returns the ordered platforms to search: the preferred
// platform, then every fallback not already listed. The preferred platform
// always precedes the generic fallbacks and common is always visited.
func platformCandidates(preferred string) []string {
	if preferred == "" || preferred == PlatformLocal {
		preferred = HostPlatform()
	}

	candidates := []string{preferred}
	for _, p := range fallbackPlatforms {
		if p != preferred {
			candidates = append(candidates, p)
		}
	}
	return candidates
}
