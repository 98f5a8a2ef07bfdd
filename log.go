package jade

import (
	"log"
	"os"
)

// debugLogger is shared across all Lexer instances for trace output; it
// writes nothing unless a particular Lexer's Config.Debug is true, so it
// carries no session-to-session state of its own.
var debugLogger = log.New(os.Stderr, "[tale-jade] ", log.LstdFlags)

// logf writes a trace line for l when l's Config.Debug is enabled. Used by
// the dispatcher to trace which scanner matched at each position and by the
// indent tracker to trace style/width detection.
func (l *Lexer) logf(format string, args ...any) {
	if l.cfg.Debug {
		debugLogger.Printf(format, args...)
	}
}
