package render

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickpage/tldr/pkg/style"
)

func ansiResolver() *style.Resolver {
	return style.NewResolverWithProfile(termenv.ANSI)
}

func plainResolver() *style.Resolver {
	return style.NewResolverWithProfile(termenv.Ascii)
}

func renderToString(t *testing.T, styles *style.Resolver, text string) string {
	t.Helper()
	var out strings.Builder
	r := NewRenderer(&out, styles)
	require.NoError(t, r.Render(text))
	return out.String()
}

func TestHeadingStripsMarker(t *testing.T) {
	out := renderToString(t, ansiResolver(), "# Title\n")

	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.NotContains(t, out, "#")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "\x1b[31m") // header defaults to red
}

func TestQuotationStripsMarker(t *testing.T) {
	out := renderToString(t, ansiResolver(), "> Archiving utility.\n")

	assert.NotContains(t, out, ">")
	assert.Contains(t, out, "Archiving utility.")
	assert.Contains(t, out, "\x1b[3m") // quote defaults to italic
}

func TestListItemKeepsFullLine(t *testing.T) {
	out := renderToString(t, plainResolver(), "- Extract an archive\n")
	assert.Equal(t, "- Extract an archive\n", out)
}

func TestBlankAfterListItemSuppressed(t *testing.T) {
	out := renderToString(t, plainResolver(), "- item\n\nnext\n")
	assert.Equal(t, "- item\nnext\n", out)
}

func TestBlankAfterHeadingPreserved(t *testing.T) {
	out := renderToString(t, plainResolver(), "# tar\n\nnext\n")
	assert.Equal(t, "tar\n\nnext\n", out)
}

func TestBlankSuppressionIsPositional(t *testing.T) {
	// The same blank line is kept after a heading and dropped after a list
	// item within one document.
	doc := "# tar\n\n- item\n\n- other\n"
	out := renderToString(t, plainResolver(), doc)
	assert.Equal(t, "tar\n\n- item\n- other\n", out)
}

func TestBlankAfterPlainTextPreserved(t *testing.T) {
	out := renderToString(t, plainResolver(), "text\n\nmore\n")
	assert.Equal(t, "text\n\nmore\n", out)
}

func TestConsecutiveBlanksAfterListItemAllSuppressed(t *testing.T) {
	// A suppressed blank leaves the state untouched, so a run of blanks
	// after a list item disappears entirely.
	out := renderToString(t, plainResolver(), "- item\n\n\nnext\n")
	assert.Equal(t, "- item\nnext\n", out)
}

func TestFinalLineWithoutNewline(t *testing.T) {
	out := renderToString(t, plainResolver(), "# tar")
	assert.Equal(t, "tar\n", out)
}

func TestPlainTextPassthrough(t *testing.T) {
	out := renderToString(t, plainResolver(), "no markup here\n")
	assert.Equal(t, "no markup here\n", out)
}

func TestListItemWithCodeAndParamSpans(t *testing.T) {
	out := renderToString(t, ansiResolver(), "- Run `foo --bar {{baz}}`\n")

	assert.NotContains(t, out, "`")
	assert.NotContains(t, out, "{{")
	assert.NotContains(t, out, "}}")
	assert.Contains(t, out, "foo --bar ")
	assert.Contains(t, out, "baz")
	assert.Contains(t, out, "\x1b[1m")  // code span
	assert.Contains(t, out, "\x1b[3m")  // param start
	assert.Contains(t, out, "\x1b[23m") // param end
}

func TestAsciiProfileEmitsNoEscapes(t *testing.T) {
	doc := "# tar\n> Archiving utility.\n- Run `tar xf {{file}}`\n"
	out := renderToString(t, plainResolver(), doc)

	assert.NotContains(t, out, "\x1b")
	assert.Contains(t, out, "tar xf file")
}

func TestExpandInlineUnbalancedParams(t *testing.T) {
	styles := ansiResolver()

	// Each delimiter substitutes independently.
	out := ExpandInline("open {{only", styles)
	assert.Equal(t, "open \x1b[3monly", out)

	out = ExpandInline("close}} only", styles)
	assert.Equal(t, "close\x1b[23m only", out)
}

func TestExpandInlineUnpairedBacktickLeftLiteral(t *testing.T) {
	styles := plainResolver()
	assert.Equal(t, "a ` b", ExpandInline("a ` b", styles))
}

func TestExpandInlineMultipleCodeSpans(t *testing.T) {
	out := ExpandInline("`a` and `b`", ansiResolver())
	assert.Equal(t, "\x1b[1ma\x1b[0m and \x1b[1mb\x1b[0m", out)
}

func TestExpandInlineParamsBeforeCode(t *testing.T) {
	// Parameter substitution runs first, so a code span keeps its already
	// substituted parameter styling.
	out := ExpandInline("`ls {{dir}}`", ansiResolver())
	assert.Equal(t, "\x1b[1mls \x1b[3mdir\x1b[23m\x1b[0m", out)
}
