package jade

import (
	"math"
	"strings"
	"unicode/utf8"
)

// scanIndent is the Indent Tracker (spec §4.C). It only fires at the start
// of a line (cursor offset 0) and translates leading tabs/spaces into
// indent/outdent deltas against the document's established style and
// width, which are fixed by the first indented line encountered.
func (l *Lexer) scanIndent() bool {
	if l.cur.offset != 0 {
		return false
	}
	if !l.cur.match(reIndentRun) {
		return false
	}
	indent := l.cur.matchText()
	line, offset := l.cur.line, l.cur.offset
	n := utf8.RuneCountInString(indent)
	l.cur.consume(n)

	if l.cur.peekRune() == '\n' || l.cur.isAtEnd() {
		// An empty or whitespace-only line: its indentation is discarded and
		// it contributes exactly one newLine token, never an indent/outdent.
		l.logf("indent: blank line at %d:%d", line, offset)
		if !l.cur.isAtEnd() {
			l.cur.consume(1)
		}
		l.cur.line++
		l.cur.offset = 0
		l.push(TokenNewLine, line, offset, nil)
		return true
	}

	spacesPresent := strings.ContainsRune(indent, ' ')
	tabsPresent := strings.ContainsRune(indent, '\t')
	if spacesPresent && tabsPresent {
		l.fail("mixed indentation within a line")
		return true
	}

	var style IndentStyle
	switch {
	case tabsPresent:
		style = IndentTab
	case spacesPresent:
		style = IndentSpace
	default:
		style = IndentUnset
	}
	if style != IndentUnset {
		if l.indentStyle == IndentUnset {
			l.indentStyle = style
			l.logf("indent: style detected as %s", style)
		} else if l.indentStyle != style {
			l.fail("mixed indentation across lines")
			return true
		}
	}

	if n > 0 && l.indentWidth == 0 {
		l.indentWidth = n
		l.logf("indent: width detected as %d", n)
	}

	newLevel := 0
	if l.indentWidth > 0 {
		newLevel = int(math.Round(float64(n) / float64(l.indentWidth)))
	}
	if newLevel > l.level+1 {
		l.fail("indent in by one level only")
		return true
	}
	if n == 0 {
		newLevel = 0
	}

	delta := newLevel - l.level
	l.level = newLevel
	if delta > 0 {
		for i := 0; i < delta; i++ {
			l.push(TokenIndent, line, offset, nil)
		}
	} else if delta < 0 {
		for i := 0; i < -delta; i++ {
			l.push(TokenOutdent, line, offset, nil)
		}
	}
	return delta != 0
}

// peekIndentLevel inspects the indentation of the line the cursor currently
// sits at the start of (offset 0), without consuming anything. It reports
// whether the line is blank (whitespace-only, which carries no indentation
// information and is handled uniformly by scanIndent) or, for a non-blank
// line, the indent level it would resolve to.
func (l *Lexer) peekIndentLevel() (level int, blank bool) {
	if !l.cur.match(reIndentRun) {
		return 0, false
	}
	indent := l.cur.matchText()
	n := utf8.RuneCountInString(indent)
	rest := l.cur.input[runeByteLen(l.cur.input, n):]
	if rest == "" || rest[0] == '\n' {
		return 0, true
	}
	if l.indentWidth == 0 {
		// Width is only ever still unset while the caller's entry level is
		// itself 0 (any prior indent would have fixed it), so any non-empty
		// indentation here is necessarily deeper than that entry level; the
		// real width gets fixed once scanIndent actually runs on this line.
		if n == 0 {
			return 0, false
		}
		return 1, false
	}
	return int(math.Round(float64(n) / float64(l.indentWidth))), false
}
