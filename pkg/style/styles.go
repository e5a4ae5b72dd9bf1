// Package style maps logical style names to terminal escape sequences.
//
// Base styles (attributes, colors, backgrounds) and the semantic aliases the
// renderer uses (header, quote, description, code, param-start, param-end)
// are defined in an embedded YAML registry. Aliases resolve indirectly: an
// environment variable may redirect each one to a different base style.
//
// Resolution never fails: a name the registry does not know, or a sequence
// the terminal cannot express, yields the empty string and rendering
// continues unstyled.
package style

import (
	_ "embed"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/quickpage/tldr/pkg/logging"
)

// candidateDef is one way of expressing a style. Candidates are tried in
// order; the first the profile supports wins.
type candidateDef struct {
	Attr       string `yaml:"attr,omitempty"`
	Color      string `yaml:"color,omitempty"`
	Background bool   `yaml:"background,omitempty"`
}

// aliasDef redirects a semantic name to a base style
type aliasDef struct {
	Default string `yaml:"default"`
	Env     string `yaml:"env"`
}

// registryConfig is the shape of the embedded styles.yaml
type registryConfig struct {
	Styles  map[string][]candidateDef `yaml:"styles"`
	Aliases map[string]aliasDef       `yaml:"aliases"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Resolver resolves logical style names against one terminal profile
type Resolver struct {
	profile termenv.Profile
	styles  map[string][]candidateDef
	aliases map[string]aliasDef
}

// NewResolver builds a Resolver for the current process environment.
// Styling is switched off entirely when stdout is not a terminal or the
// user asked for no color.
func NewResolver() *Resolver {
	profile := termenv.Ascii
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		if !termenv.EnvNoColor() {
			profile = termenv.EnvColorProfile()
		}
	}
	return NewResolverWithProfile(profile)
}

// NewResolverWithProfile builds a Resolver for an explicit profile
func NewResolverWithProfile(profile termenv.Profile) *Resolver {
	r := &Resolver{
		profile: profile,
		styles:  map[string][]candidateDef{},
		aliases: map[string]aliasDef{},
	}

	var cfg registryConfig
	if err := yaml.Unmarshal(embeddedStyles, &cfg); err != nil {
		// A broken embedded registry means a broken build; degrade to
		// unstyled output rather than failing the whole invocation.
		logger := logging.GetLogger("style")
		logger.Warn().Err(err).Msg("Failed to parse embedded style registry")
		return r
	}
	r.styles = cfg.Styles
	r.aliases = cfg.Aliases

	return r
}

// Sequence returns the escape sequence activating the named style, or the
// empty string if the name is unknown or the terminal lacks the capability.
func (r *Resolver) Sequence(name string) string {
	if alias, ok := r.aliases[name]; ok {
		base := alias.Default
		if override := os.Getenv(alias.Env); override != "" {
			if _, known := r.styles[override]; known {
				base = override
			}
		}
		name = base
	}

	candidates, ok := r.styles[name]
	if !ok {
		return ""
	}
	for _, c := range candidates {
		if seq := r.sequenceFor(c); seq != "" {
			return seq
		}
	}
	return ""
}

// sequenceFor renders one candidate through the profile, or "" when the
// profile cannot express it
func (r *Resolver) sequenceFor(c candidateDef) string {
	if r.profile == termenv.Ascii {
		return ""
	}
	if c.Attr != "" {
		return termenv.CSI + c.Attr + "m"
	}
	if c.Color != "" {
		color := r.profile.Color(c.Color)
		if color == nil {
			return ""
		}
		return termenv.CSI + color.Sequence(c.Background) + "m"
	}
	return ""
}

// Reset is a convenience for the sequence every styled span ends with
func (r *Resolver) Reset() string {
	return r.Sequence("reset")
}
