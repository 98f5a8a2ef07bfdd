// Command jadedump prints the token stream for a jade source file, using
// jade.Dump. It is a thin wrapper around the lexer's debug operation, not a
// general-purpose CLI front end for the language (that front end, along
// with the parser/compiler it would drive, is out of scope for this
// module).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/marihachi/tale-jade"
)

func main() {
	debug := flag.Bool("debug", false, "enable dispatcher/indent-tracker trace logging")
	indentWidth := flag.Int("indent-width", 0, "force the indentation width instead of autodetecting it")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: jadedump [-debug] [-indent-width N] <file>")
		os.Exit(2)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var opts []jade.Option
	if *debug {
		opts = append(opts, jade.WithDebug(true))
	}
	if *indentWidth > 0 {
		opts = append(opts, jade.WithIndentWidth(*indentWidth))
	}

	if err := jade.Dump(os.Stdout, string(src), opts...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
