package directive

import "strings"

// span is a half-open byte range [start, end) into a cursor's source.
type span struct {
	start int
	end   int
}

// fileCursor holds the scan state for one source buffer. One cursor exists
// per file currently being scanned; the Parser stacks them, pushing on entry
// into an included file and popping when the file is exhausted.
//
// tokenStart and tokenEnd delimit the most recent directive line; the
// interval [lastTokenEnd, tokenStart) is the ordinary text span between the
// previous directive and the current one.
type fileCursor struct {
	name   string
	source string
	pos    int
	line   int

	tokenStart   int
	tokenEnd     int
	lastTokenEnd int

	// comments records every line-comment range seen so far, so ordinary
	// text spans can be emitted with comment text removed.
	comments []span
}

func newFileCursor(name, source string) *fileCursor {
	return &fileCursor{name: name, source: source, line: 1}
}

func (c *fileCursor) atEnd() bool {
	return c.pos >= len(c.source)
}

func (c *fileCursor) peek() byte {
	return c.source[c.pos]
}

// peekNext returns the byte after the current one, or 0 at the end of the
// buffer.
func (c *fileCursor) peekNext() byte {
	if c.pos+1 >= len(c.source) {
		return 0
	}
	return c.source[c.pos+1]
}

// skipLineComment advances past a // comment up to, but not including, the
// terminating newline, and records the skipped range.
func (c *fileCursor) skipLineComment() {
	start := c.pos
	for !c.atEnd() && c.peek() != '\n' {
		c.pos++
	}
	c.comments = append(c.comments, span{start: start, end: c.pos})
}

// extractStatement is called with the cursor on a '#'. It records the
// directive start, consumes the rest of the physical line, and returns the
// statement text between the '#' and the newline. Directives are always
// single physical lines.
func (c *fileCursor) extractStatement() string {
	c.lastTokenEnd = c.tokenEnd
	c.tokenStart = c.pos
	c.pos++ // consume '#'

	start := c.pos
	for !c.atEnd() && c.peek() != '\n' {
		c.pos++
	}
	return c.source[start:c.pos]
}

// plainSpan returns the ordinary text between the previous directive and the
// current one, with line comments removed. The second result is false when
// the raw interval is exactly 2 bytes long: such spans are formatting
// artifacts between tightly adjacent directives and are dropped rather than
// emitted as near-empty body fragments.
func (c *fileCursor) plainSpan() (string, bool) {
	if c.tokenStart-c.lastTokenEnd == 2 {
		return "", false
	}
	return c.stripComments(c.lastTokenEnd, c.tokenStart), true
}

// passthroughSpan returns the most recent directive line verbatim, including
// its leading '#' but not the newline.
func (c *fileCursor) passthroughSpan() string {
	return c.source[c.tokenStart:c.tokenEnd]
}

// stripComments copies source[start:end] leaving out every recorded comment
// range that overlaps it. Newlines terminating comments are kept.
func (c *fileCursor) stripComments(start, end int) string {
	text := c.source[start:end]
	if len(c.comments) == 0 {
		return text
	}

	var sb strings.Builder
	at := start
	for _, cm := range c.comments {
		if cm.end <= at || cm.start >= end {
			continue
		}
		if cm.start > at {
			sb.WriteString(c.source[at:cm.start])
		}
		at = cm.end
		if at >= end {
			break
		}
	}
	if at < end {
		sb.WriteString(c.source[at:end])
	}
	if sb.Len() == len(text) {
		return text
	}
	return sb.String()
}
