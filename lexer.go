// Package jade implements the lexer (tokenizer) for a Jade/Pug-style
// indentation-sensitive template language. It consumes a source string and
// produces a lazy sequence of typed tokens for a downstream parser. The
// downstream parser/AST, a compiler, file I/O/include resolution and a CLI
// are not part of this module — they are external collaborators.
package jade

import (
	"fmt"
	"io"
	"strings"
)

// IndentStyle identifies whether a document indents with tabs or spaces.
type IndentStyle int

const (
	IndentUnset IndentStyle = iota
	IndentTab
	IndentSpace
)

func (s IndentStyle) String() string {
	switch s {
	case IndentTab:
		return "tab"
	case IndentSpace:
		return "space"
	default:
		return "unset"
	}
}

// Config holds the optional constructor settings from spec §6. Each Lexer
// owns its own Config value (and every other piece of mutable state); there
// is no package-level mutable lexing state, so independent Lexer values may
// run concurrently in separate goroutines.
type Config struct {
	IndentStyle IndentStyle // force tab/space; IndentUnset autodetects
	IndentWidth int         // force width; 0 autodetects from the first indent
	Encoding    string      // informational only; arithmetic is rune-based
	Debug       bool        // enables trace output via the debug logger
	ErrorSink   ErrorSink   // optional diagnostic collaborator, see error.go
}

// Option configures a Lexer at construction time.
type Option func(*Config)

// WithIndentStyle forces the document's indentation style instead of
// autodetecting it from the first indented line.
func WithIndentStyle(s IndentStyle) Option {
	return func(c *Config) { c.IndentStyle = s }
}

// WithIndentWidth forces the document's indent width instead of
// autodetecting it from the first indented line.
func WithIndentWidth(n int) Option {
	return func(c *Config) { c.IndentWidth = n }
}

// WithEncoding names the encoding used for length/offset accounting. It is
// informational only: this lexer always counts Unicode scalar values.
func WithEncoding(name string) Option {
	return func(c *Config) { c.Encoding = name }
}

// WithDebug enables trace logging of dispatcher and indent-tracker
// decisions to the package debug logger.
func WithDebug(debug bool) Option {
	return func(c *Config) { c.Debug = debug }
}

// WithErrorSink registers a collaborator notified of the fatal LexError (if
// any) in addition to it being returned from Next/All.
func WithErrorSink(sink ErrorSink) Option {
	return func(c *Config) { c.ErrorSink = sink }
}

// Lexer holds all per-session state: the cursor, the current indentation
// level/style/width, and the small queue of tokens produced but not yet
// delivered to the caller. A Lexer is not safe for concurrent use by more
// than one goroutine, but independent Lexer values share no state.
type Lexer struct {
	cfg Config
	cur *cursor

	level       int
	indentStyle IndentStyle
	indentWidth int

	pending []Token
	err     *LexError
	done    bool
}

// normalize strips '\r' and NUL bytes, trims trailing whitespace, and
// appends a terminating '\n', matching the Lex Driver normalization rule
// of spec §4.F.
func normalize(input string) string {
	s := strings.NewReplacer("\r", "", "\x00", "").Replace(input)
	s = strings.TrimRight(s, " \t\n\v\f")
	return s + "\n"
}

// New creates a Lexer over input, ready to produce tokens via Next or All.
// Normalization happens immediately; nothing is scanned until requested.
func New(input string, opts ...Option) *Lexer {
	cfg := Config{}
	for _, o := range opts {
		o(&cfg)
	}
	return &Lexer{
		cfg:         cfg,
		cur:         newCursor(normalize(input)),
		indentStyle: cfg.IndentStyle,
		indentWidth: cfg.IndentWidth,
	}
}

// Lex is the primary operation from spec §6: lex(input) -> lazy sequence of
// token. It is equivalent to New(input, opts...); callers iterate the
// returned Lexer with Next, or call All for the whole sequence at once.
func Lex(input string, opts ...Option) *Lexer {
	return New(input, opts...)
}

// All materializes the full token sequence for input eagerly, matching the
// teacher's own lex() which returns a []*Token rather than an iterator.
func All(input string, opts ...Option) ([]Token, error) {
	return New(input, opts...).All()
}

// fail records a fatal LexError at the cursor's current position and
// terminates the sequence. No recovery is attempted: the first fatal
// condition wins, matching spec §7.
func (l *Lexer) fail(reason string) {
	if l.err != nil {
		return
	}
	e := &LexError{Reason: reason, Line: l.cur.line, Offset: l.cur.offset}
	l.err = e
	l.done = true
	l.pending = nil
	if l.cfg.ErrorSink != nil {
		l.cfg.ErrorSink.LexError(e)
	}
}

func (l *Lexer) failf(format string, args ...any) {
	l.fail(fmt.Sprintf(format, args...))
}

// push appends a token to the pending queue, capturing the caller-supplied
// start position (invariant 6: line/offset reflect the token's start, not
// the cursor's position after scanning it).
func (l *Lexer) push(typ TokenType, line, offset int, attrs map[string]string) {
	l.pending = append(l.pending, newToken(typ, line, offset, attrs))
}

// fill runs the dispatcher until at least one token is queued, the input is
// exhausted, or a fatal error occurs.
func (l *Lexer) fill() {
	for len(l.pending) == 0 && l.err == nil && !l.cur.isAtEnd() {
		if !l.dispatchStep() {
			if l.cur.readSpaces() == 0 {
				l.failf("unexpected input `%s`, expected one of %s", l.cur.peek(20), strings.Join(topLevelScannerNames, ", "))
				return
			}
		}
	}
	// End of input with an open indentation level: synthesize the closing
	// outdents so the stream always returns to level 0 (spec §8 scenario 2).
	if len(l.pending) == 0 && l.err == nil && l.cur.isAtEnd() && l.level > 0 {
		line, offset := l.cur.line, l.cur.offset
		for l.level > 0 {
			l.level--
			l.push(TokenOutdent, line, offset, nil)
		}
	}
	if len(l.pending) == 0 {
		l.done = true
	}
}

// Next pulls the next token from the stream, or (Token{}, false) once the
// sequence has ended — either cleanly at end of input or because of a fatal
// error (check Err() to tell the two apart).
func (l *Lexer) Next() (Token, bool) {
	if len(l.pending) == 0 {
		l.fill()
	}
	if len(l.pending) == 0 {
		return Token{}, false
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok, true
}

// All drains the remaining sequence into a slice.
func (l *Lexer) All() ([]Token, error) {
	var toks []Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks, l.Err()
}

// Err returns the fatal LexError that ended the sequence, or nil if the
// sequence ended cleanly (or hasn't ended yet).
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// Accessors: read-only snapshots of the current lex state (spec §6).

func (l *Lexer) Input() string { return l.cur.input }
func (l *Lexer) Length() int   { return l.cur.total }
func (l *Lexer) Position() int { return l.cur.position }
func (l *Lexer) Line() int     { return l.cur.line }
func (l *Lexer) Offset() int   { return l.cur.offset }

// Level returns the current indentation depth. At end of input any open
// levels are closed with synthetic outdent tokens (see fill), so Level is 0
// once the sequence has fully drained.
func (l *Lexer) Level() int               { return l.level }
func (l *Lexer) IndentStyle() IndentStyle { return l.indentStyle }
func (l *Lexer) IndentWidth() int         { return l.indentWidth }

// Dump writes a human-readable linearization of the token stream to w: each
// token as "[type(line:offset) key=value, ...]", with a newline appended
// after every newLine token, matching spec §6's debug operation.
func Dump(w io.Writer, input string, opts ...Option) error {
	l := New(input, opts...)
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		if _, err := io.WriteString(w, tok.String()); err != nil {
			return err
		}
		if tok.Type == TokenNewLine {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return l.Err()
}
