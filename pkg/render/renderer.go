// Package render turns the restricted page markup into styled terminal
// text. The grammar is line-local: a heading, quotation, list item or
// fenced code line is recognized by its leading character, everything else
// passes through as plain text. This is deliberately not a markdown
// renderer; the corpus uses exactly this subset.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/quickpage/tldr/pkg/style"
)

// token classifies the previously rendered line. One token of lookback is
// the renderer's entire state: it exists only so the blank separator the
// corpus places after every example block can be swallowed.
type token int

const (
	tokenNone token = iota
	tokenHeading
	tokenQuotation
	tokenListItem
	tokenCode
	tokenText
)

// Renderer walks a document once, line by line, and writes styled output
type Renderer struct {
	out    io.Writer
	styles *style.Resolver
	last   token
}

// NewRenderer returns a Renderer writing to out
func NewRenderer(out io.Writer, styles *style.Resolver) *Renderer {
	return &Renderer{out: out, styles: styles, last: tokenNone}
}

// Render expands the inline markup of text and renders every line. A final
// line without a trailing newline is processed like any other.
func (r *Renderer) Render(text string) error {
	text = ExpandInline(text, r.styles)

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	for _, line := range lines {
		if err := r.renderLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderLine(line string) error {
	if strings.TrimSpace(line) == "" && r.last == tokenListItem {
		// The corpus separates example blocks with a blank line; printing
		// it would double-space every list. State is unchanged.
		return nil
	}

	reset := r.styles.Reset()

	switch firstByte(line) {
	case '#':
		r.last = tokenHeading
		return r.emit(r.styles.Sequence("header") + stripMarker(line) + reset)
	case '>':
		r.last = tokenQuotation
		return r.emit(r.styles.Sequence("quote") + stripMarker(line) + reset)
	case '-':
		r.last = tokenListItem
		return r.emit(r.styles.Sequence("description") + line + reset)
	case '`':
		r.last = tokenCode
		return r.emit(r.styles.Sequence("code") + line + reset)
	default:
		r.last = tokenText
		return r.emit(line)
	}
}

func (r *Renderer) emit(line string) error {
	_, err := fmt.Fprintln(r.out, line)
	return err
}

func firstByte(line string) byte {
	if line == "" {
		return 0
	}
	return line[0]
}

// stripMarker drops the marker character and the space that follows it
func stripMarker(line string) string {
	if len(line) < 2 {
		return ""
	}
	return line[2:]
}
