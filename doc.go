// Package jade implements the lexer for a Jade/Pug-style indentation
// sensitive template language.
//
// Given a source string, the Lexer produces a lazy sequence of typed
// tokens (tags, classes, ids, attributes, control statements, plain text,
// indent/outdent deltas, ...) for a downstream parser to consume. Building
// an AST, compiling output, resolving includes and a command-line front end
// are out of scope for this package; they are external collaborators.
//
// A small example:
//
//	lex := jade.New("ul\n  li.item Hello")
//	for {
//	    tok, ok := lex.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(tok)
//	}
//	if err := lex.Err(); err != nil {
//	    panic(err)
//	}
package jade
