package jade

// topLevelScannerNames names the ordered scanner list below, in the same
// order, for use in "unexpected input" diagnostics.
var topLevelScannerNames = []string{
	"newLine", "indent", "import", "block", "conditional", "each", "case",
	"when", "do", "while", "mixin", "mixinCall", "doctype", "tag", "classes",
	"id", "attributes", "assignment", "comment", "filter", "expression",
	"markup", "textLine", "text",
}

// topLevelScanners is the Dispatcher's fixed, priority-ordered scanner list
// (spec §4.D): control-statement and declaration keywords are tried before
// the generic tag scanner so that, e.g., "if" isn't mistaken for a tag
// named "if", and the catch-all text scanner is tried last of all.
var topLevelScanners = []func(*Lexer) bool{
	(*Lexer).scanNewLine,
	(*Lexer).scanIndent,
	(*Lexer).scanImport,
	(*Lexer).scanBlock,
	(*Lexer).scanConditional,
	(*Lexer).scanEach,
	(*Lexer).scanCase,
	(*Lexer).scanWhen,
	(*Lexer).scanDo,
	(*Lexer).scanWhile,
	(*Lexer).scanMixin,
	(*Lexer).scanMixinCall,
	(*Lexer).scanDoctype,
	(*Lexer).scanTag,
	(*Lexer).scanClasses,
	(*Lexer).scanID,
	(*Lexer).scanAttributes,
	(*Lexer).scanAssignment,
	(*Lexer).scanComment,
	(*Lexer).scanFilter,
	(*Lexer).scanExpression,
	(*Lexer).scanMarkup,
	(*Lexer).scanTextLine,
	(*Lexer).scanText,
}

// scanNewLine fires on a bare '\n' reached outside of any other scanner's
// own newline handling (e.g. a truly blank document, or the newline right
// after the last token on a line that no other scanner claimed).
func (l *Lexer) scanNewLine() bool {
	if l.cur.peekRune() != '\n' {
		return false
	}
	line, offset := l.cur.line, l.cur.offset
	l.cur.consume(1)
	l.cur.line++
	l.cur.offset = 0
	l.push(TokenNewLine, line, offset, nil)
	return true
}

// dispatchStep tries each top-level scanner in priority order, stopping at
// the first one that yields at least one token: "wins on any token
// yielded" (spec §9 open question) rather than on a bare regex match, so a
// scanner that matches but produces nothing (e.g. the indent tracker on an
// unchanged level) yields control to the next candidate at the new cursor
// position instead of short-circuiting it.
func (l *Lexer) dispatchStep() bool {
	before := len(l.pending)
	for i, scan := range topLevelScanners {
		if l.err != nil {
			return true
		}
		if scan(l) {
			l.logf("dispatch: %s matched at %d:%d", topLevelScannerNames[i], l.cur.line, l.cur.offset)
			return true
		}
	}
	return len(l.pending) > before
}
