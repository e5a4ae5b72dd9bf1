package pages

import (
	"os"
	"strings"
)

// Locale environment variables consulted when no explicit language is set
const (
	// EnvLanguageList is the colon-separated locale preference list
	EnvLanguageList = "LANGUAGE"

	// EnvLang is the primary locale
	EnvLang = "LANG"
)

// languageCandidates derives the ordered cache subdirectory candidates.
// The empty string stands for the untagged default tree.
//
// An explicit override is final: the untagged default is NOT appended, so a
// user who asked for a language never silently falls back to English. With
// no override, the LANGUAGE preference list is tried in order, then LANG,
// then the untagged default.
func languageCandidates(override string) []string {
	if override != "" {
		return []string{override}
	}

	langList := os.Getenv(EnvLanguageList)
	lang := os.Getenv(EnvLang)
	if langList == "" && lang == "" {
		return []string{""}
	}

	var candidates []string
	seen := map[string]bool{}
	appendLocale := func(locale string) {
		code := normalizeLocale(locale)
		if code == "" || seen[code] {
			return
		}
		seen[code] = true
		candidates = append(candidates, code)
	}

	for _, entry := range strings.Split(langList, ":") {
		appendLocale(entry)
	}
	appendLocale(lang)

	return append(candidates, "")
}

// normalizeLocale reduces a locale identifier to its language+region
// portion. Encoding suffixes are stripped and the C/POSIX locales are
// skipped entirely.
func normalizeLocale(locale string) string {
	if dot := strings.IndexByte(locale, '.'); dot >= 0 {
		locale = locale[:dot]
	}
	locale = strings.TrimSpace(locale)
	if locale == "" || locale == "C" || locale == "POSIX" {
		return ""
	}
	return locale
}
