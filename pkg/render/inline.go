package render

import (
	"strings"

	"github.com/quickpage/tldr/pkg/style"
)

// ExpandInline rewrites the two inline markups of the page grammar into
// styled spans.
//
// Parameter delimiters are substituted independently: every "{{" becomes the
// param-start sequence and every "}}" the param-end sequence, so unbalanced
// markup degrades to odd styling instead of an error. Backtick pairs are
// replaced afterwards, wrapping their content in the code style followed by
// a reset; a backtick without a partner is left literal.
func ExpandInline(text string, styles *style.Resolver) string {
	text = strings.ReplaceAll(text, "{{", styles.Sequence("param-start"))
	text = strings.ReplaceAll(text, "}}", styles.Sequence("param-end"))
	return expandCodeSpans(text, styles.Sequence("code"), styles.Reset())
}

func expandCodeSpans(text, codeSeq, resetSeq string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(text, '`')
		if open < 0 {
			b.WriteString(text)
			break
		}
		relClose := strings.IndexByte(text[open+1:], '`')
		if relClose < 0 {
			// Unpaired backtick: pass the rest through untouched.
			b.WriteString(text)
			break
		}
		b.WriteString(text[:open])
		b.WriteString(codeSeq)
		b.WriteString(text[open+1 : open+1+relClose])
		b.WriteString(resetSeq)
		text = text[open+relClose+2:]
	}
	return b.String()
}
