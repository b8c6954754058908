package gocalc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const Prompt = "calc> "

// REPL evaluates its input one line at a time.
type REPL struct {
	Grammar *Grammar
	Prompt  string

	// KeepGoing reports errors and moves on to the next line instead of
	// stopping at the first one.
	KeepGoing bool

	Trace io.Writer
}

func (r *REPL) Run(in io.Reader, out, errOut io.Writer) error {
	g := r.Grammar
	if g == nil {
		g = Multiplicative
	}
	scanner := bufio.NewScanner(in)
	for {
		if r.Prompt != "" {
			fmt.Fprint(out, r.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		lexer := NewLexer(g, line)
		lexer.Trace = r.Trace
		ret, err := NewEvaluator(lexer).Expr()
		if err != nil {
			if !r.KeepGoing {
				return err
			}
			fmt.Fprintln(errOut, err)
			continue
		}
		fmt.Fprintln(out, ret)
	}
	return scanner.Err()
}
